package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/kds"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/utils"
)

type BackupController struct {
	App *state.App
}

func NewBackupController(app *state.App) *BackupController {
	return &BackupController{App: app}
}

// Export -> unduh backup {menu, gallery} sebagai file JSON polos
// (tanpa envelope respons dan tanpa field versi).
func (bc *BackupController) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="resto-backup.json"`)
	c.JSON(http.StatusOK, bc.App.Export())
}

// Import -> terapkan file backup. Key yang ada menimpa koleksi utuh, key
// yang absen dibiarkan; JSON rusak ditolak tanpa perubahan apapun.
// Menerima file multipart "file" atau body JSON mentah.
func (bc *BackupController) Import(c *gin.Context) {
	raw, err := bc.readBackup(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bc.App.Import(raw); err != nil {
		if errors.Is(err, state.ErrBadBackup) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kds.BroadcastCatalogUpdate(bc.App.Catalog())
	utils.InfoLogger.Printf("Backup imported (%d menu items, %d gallery images)",
		len(bc.App.Catalog()), len(bc.App.Gallery()))
	utils.RespondJSON(c, http.StatusOK, "Backup imported", gin.H{
		"menu_items":     len(bc.App.Catalog()),
		"gallery_images": len(bc.App.Gallery()),
	})
}

func (bc *BackupController) readBackup(c *gin.Context) ([]byte, error) {
	if header, err := c.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			return nil, errors.New("error opening backup file")
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		return nil, errors.New("backup payload is required")
	}
	return raw, nil
}
