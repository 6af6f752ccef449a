package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/models"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/utils"
)

type OrderController struct {
	App *state.App
}

func NewOrderController(app *state.App) *OrderController {
	return &OrderController{App: app}
}

// orderView adalah bentuk response order aktif. Total dibulatkan dua digit
// hanya untuk display; total internal tetap eksak.
type orderView struct {
	Table int                `json:"table"`
	Lines []models.OrderLine `json:"lines"`
	Total float64            `json:"total"`
}

func viewOf(order models.Order) orderView {
	return orderView{
		Table: order.Table,
		Lines: order.Lines,
		Total: utils.Round2(order.Total()),
	}
}

// GetOrder -> order aktif beserta totalnya
func (oc *OrderController) GetOrder(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Active order", viewOf(oc.App.Order()))
}

// AddItem -> salin satu item catalog menjadi line baru (qty=1)
func (oc *OrderController) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.App.AddToOrder(req.MenuItemID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added to order", viewOf(order))
}

// ChangeQty -> geser qty line sebesar delta (batas bawah 1)
func (oc *OrderController) ChangeQty(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid line index"))
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := oc.App.ChangeQty(index, req.Delta)
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", viewOf(order))
}

// RemoveItem -> hapus satu line dari order
func (oc *OrderController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid line index"))
		return
	}

	order := oc.App.RemoveFromOrder(index)
	utils.RespondJSON(c, http.StatusOK, "Item removed from order", viewOf(order))
}

// ClearOrder -> kosongkan order aktif
func (oc *OrderController) ClearOrder(c *gin.Context) {
	oc.App.ClearOrder()
	utils.RespondJSON(c, http.StatusOK, "Order cleared", viewOf(oc.App.Order()))
}

// SetTable -> pilih meja aktif untuk order berjalan
func (oc *OrderController) SetTable(c *gin.Context) {
	var req struct {
		Table int `json:"table" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.App.SetTable(req.Table); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active table selected", viewOf(oc.App.Order()))
}
