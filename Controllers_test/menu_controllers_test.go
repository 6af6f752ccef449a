package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
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

func setupAppForMenus() *state.App {
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

func setupMenuRouter(app *state.App) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(app)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	router.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	return router
}

func TestMenuCRUD(t *testing.T) {
	utils.InitLogger()
	app := setupAppForMenus()
	router := setupMenuRouter(app)

	// Create Menu
	payload := map[string]interface{}{
		"category": "food",
		"name":     "Ayam Geprek",
		"price":    23000,
		"notes":    "Level pedas 1-5",
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/menus", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &createResp)
	assert.NoError(t, err)

	data, ok := createResp["data"].(map[string]interface{})
	assert.True(t, ok, "data response harus berupa map")
	menuIDFloat, ok := data["id"].(float64)
	assert.True(t, ok, "menu id harus berupa float64")
	menuID := int(menuIDFloat)

	// Get Menu by ID
	url := "/menus/" + strconv.Itoa(menuID)
	req, err = http.NewRequest("GET", url, nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Update Menu
	updatePayload := map[string]interface{}{
		"category": "food",
		"name":     "Ayam Geprek Keju",
		"price":    26000,
	}
	payloadBytes, err = json.Marshal(updatePayload)
	assert.NoError(t, err)
	req, err = http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete Menu
	req, err = http.NewRequest("DELETE", url, nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateMenuRejectsBadCategory(t *testing.T) {
	utils.InitLogger()
	app := setupAppForMenus()
	router := setupMenuRouter(app)
	before := len(app.Catalog())

	payload := map[string]interface{}{
		"category": "sushi",
		"name":     "Salmon Roll",
		"price":    45000,
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/menus", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, app.Catalog(), before)
}
