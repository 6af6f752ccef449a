package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-lite/controllers"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/store"
	"github.com/yeremiapane/resto-lite/utils"
)

func setupAppForBackup() *state.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	st, err := store.New(db)
	if err != nil {
		panic(err)
	}
	return state.New(st)
}

func setupBackupRouter(app *state.App) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	backupCtrl := controllers.NewBackupController(app)
	router.GET("/export", backupCtrl.Export)
	router.POST("/import", backupCtrl.Import)
	return router
}

func TestExportDownload(t *testing.T) {
	utils.InitLogger()
	app := setupAppForBackup()
	router := setupBackupRouter(app)

	req, err := http.NewRequest("GET", "/export", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "resto-backup.json")

	// File polos {menu, gallery}, bukan envelope respons
	var doc map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc, "menu")
	assert.Contains(t, doc, "gallery")
	assert.NotContains(t, doc, "status")
}

func TestImportOverwritesPresentKeysOnly(t *testing.T) {
	utils.InitLogger()
	app := setupAppForBackup()
	router := setupBackupRouter(app)

	_, err := app.AddGalleryImage("data:image/png;base64,AAAA")
	assert.NoError(t, err)

	payload := []byte(`{"menu":[{"id":1,"category":"food","name":"Pecel Lele","price":16000}]}`)
	req, err := http.NewRequest("POST", "/import", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	catalog := app.Catalog()
	assert.Len(t, catalog, 1)
	assert.Equal(t, "Pecel Lele", catalog[0].Name)
	// Gallery tidak disentuh karena key "gallery" absen
	assert.Len(t, app.Gallery(), 1)
}

func TestImportMalformedJSONReturns400(t *testing.T) {
	utils.InitLogger()
	app := setupAppForBackup()
	router := setupBackupRouter(app)
	before := app.Catalog()

	req, err := http.NewRequest("POST", "/import", bytes.NewBufferString(`{"menu": [`))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, before, app.Catalog())
}
