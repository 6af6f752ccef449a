package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/models"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/utils"
)

// TableController tidak memegang state: mapping meja -> URL adalah fungsi
// murni di atas base URL halaman menu.
type TableController struct {
	BaseURL    string
	QREndpoint string
}

func NewTableController(baseURL, qrEndpoint string) *TableController {
	return &TableController{BaseURL: baseURL, QREndpoint: qrEndpoint}
}

type tableView struct {
	Table   int    `json:"table"`
	MenuURL string `json:"menu_url"`
	QRURL   string `json:"qr_url"`
}

func (tc *TableController) view(table int) tableView {
	return tableView{
		Table:   table,
		MenuURL: utils.MenuURL(tc.BaseURL, table),
		QRURL:   utils.QRImageURL(tc.QREndpoint, tc.BaseURL, table),
	}
}

// GetAllTables -> meja 1..14 beserta link menu dan gambar QR-nya
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables := make([]tableView, 0, models.TableCount)
	for t := 1; t <= models.TableCount; t++ {
		tables = append(tables, tc.view(t))
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableQR -> mapping QR untuk satu meja
func (tc *TableController) GetTableQR(c *gin.Context) {
	table, err := strconv.Atoi(c.Param("table"))
	if err != nil || !models.ValidTable(table) {
		utils.RespondError(c, http.StatusBadRequest, state.ErrInvalidTable)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table QR mapping", tc.view(table))
}
