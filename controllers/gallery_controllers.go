package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/utils"
)

type GalleryController struct {
	App *state.App
}

func NewGalleryController(app *state.App) *GalleryController {
	return &GalleryController{App: app}
}

// GetGallery
func (gc *GalleryController) GetGallery(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Gallery images", gc.App.Gallery())
}

// UploadImage -> simpan file upload sebagai entri gallery. Tanpa file yang
// dipilih, tidak ada yang berubah (bukan error).
func (gc *GalleryController) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.RespondJSON(c, http.StatusOK, "No image selected, gallery unchanged", gc.App.Gallery())
		return
	}

	dataURI, err := utils.FileToDataURI(header)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("error reading image file"))
		return
	}

	image, err := gc.App.AddGalleryImage(dataURI)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Image added to gallery", image)
}

// DeleteImage
func (gc *GalleryController) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("image_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid image_id"))
		return
	}

	if err := gc.App.DeleteGalleryImage(id); err != nil {
		if errors.Is(err, state.ErrUnknownImage) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Image deleted", gin.H{"image_id": id})
}
