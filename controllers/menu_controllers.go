package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/kds"
	"github.com/yeremiapane/resto-lite/models"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/utils"
)

type MenuController struct {
	App *state.App
}

func NewMenuController(app *state.App) *MenuController {
	return &MenuController{App: app}
}

type menuRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
	Image    string  `json:"image"`
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.App.Catalog())
}

// CreateMenu -> tambah item baru ke catalog
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.App.AddMenuItem(models.MenuItem{
		Category: req.Category,
		Name:     req.Name,
		Price:    req.Price,
		Notes:    req.Notes,
		Image:    req.Image,
	})
	if err != nil {
		utils.RespondError(c, menuErrStatus(err), err)
		return
	}

	kds.BroadcastCatalogUpdate(mc.App.Catalog())
	utils.InfoLogger.Printf("Menu created: %s (%s) @ %s", item.Name, item.Category, utils.FormatCurrency(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return
	}

	item, err := mc.App.MenuItem(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

// UpdateMenu -> edit seluruh field item. Image lama dipertahankan kalau
// request tidak membawa image baru.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return
	}

	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	current, err := mc.App.MenuItem(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	image := current.Image
	if req.Image != "" {
		image = req.Image
	}

	item, err := mc.App.UpdateMenuItem(uint(id), models.MenuItem{
		Category: req.Category,
		Name:     req.Name,
		Price:    req.Price,
		Notes:    req.Notes,
		Image:    image,
	})
	if err != nil {
		utils.RespondError(c, menuErrStatus(err), err)
		return
	}

	kds.BroadcastCatalogUpdate(mc.App.Catalog())
	utils.RespondJSON(c, http.StatusOK, "Menu updated successfully", item)
}

// UploadMenuImage -> pasang gambar dari file upload. Tanpa file yang
// dipilih, item dibiarkan apa adanya (bukan error).
func (mc *MenuController) UploadMenuImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		// Tidak ada file yang dipilih: abaikan diam-diam.
		item, lookupErr := mc.App.MenuItem(uint(id))
		if lookupErr != nil {
			utils.RespondError(c, http.StatusNotFound, lookupErr)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "No image selected, menu unchanged", item)
		return
	}

	dataURI, err := utils.FileToDataURI(header)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("error reading image file"))
		return
	}

	item, err := mc.App.SetMenuItemImage(uint(id), dataURI)
	if err != nil {
		utils.RespondError(c, menuErrStatus(err), err)
		return
	}

	kds.BroadcastCatalogUpdate(mc.App.Catalog())
	utils.RespondJSON(c, http.StatusOK, "Menu image updated", item)
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu_id"))
		return
	}

	if err := mc.App.DeleteMenuItem(uint(id)); err != nil {
		utils.RespondError(c, menuErrStatus(err), err)
		return
	}

	kds.BroadcastCatalogUpdate(mc.App.Catalog())
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}

func menuErrStatus(err error) int {
	switch {
	case errors.Is(err, state.ErrUnknownMenuItem):
		return http.StatusNotFound
	case errors.Is(err, state.ErrInvalidCategory),
		errors.Is(err, state.ErrEmptyName),
		errors.Is(err, state.ErrNegativePrice):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
