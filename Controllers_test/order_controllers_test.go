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

func setupAppForOrders() *state.App {
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

func setupOrderRouter(app *state.App) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(app)
	router.GET("/order", orderCtrl.GetOrder)
	router.POST("/order/items", orderCtrl.AddItem)
	router.PATCH("/order/items/:index", orderCtrl.ChangeQty)
	router.DELETE("/order/items/:index", orderCtrl.RemoveItem)
	router.DELETE("/order", orderCtrl.ClearOrder)
	router.PUT("/order/table", orderCtrl.SetTable)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func orderData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok, "data response harus berupa map")
	return data
}

func TestOrderBuilderFlow(t *testing.T) {
	utils.InitLogger()
	app := setupAppForOrders()
	router := setupOrderRouter(app)

	// Dua kali item yang sama -> dua line terpisah
	w := doJSON(t, router, "POST", "/order/items", map[string]interface{}{"menu_item_id": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, "POST", "/order/items", map[string]interface{}{"menu_item_id": 1})
	assert.Equal(t, http.StatusOK, w.Code)

	data := orderData(t, w)
	lines := data["lines"].([]interface{})
	assert.Len(t, lines, 2)

	// Naikkan qty line pertama
	w = doJSON(t, router, "PATCH", "/order/items/0", map[string]interface{}{"delta": 2})
	assert.Equal(t, http.StatusOK, w.Code)
	data = orderData(t, w)
	first := data["lines"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(3), first["qty"])

	// Total = 25000*3 + 25000*1
	assert.Equal(t, float64(100000), data["total"])

	// Hapus line kedua
	w = doJSON(t, router, "DELETE", "/order/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = orderData(t, w)
	assert.Len(t, data["lines"].([]interface{}), 1)

	// Clear
	w = doJSON(t, router, "DELETE", "/order", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = orderData(t, w)
	assert.Empty(t, data["lines"])
}

func TestAddUnknownMenuItemToOrder(t *testing.T) {
	utils.InitLogger()
	app := setupAppForOrders()
	router := setupOrderRouter(app)

	w := doJSON(t, router, "POST", "/order/items", map[string]interface{}{"menu_item_id": 777})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, app.Order().Lines)
}

func TestSetTableValidation(t *testing.T) {
	utils.InitLogger()
	app := setupAppForOrders()
	router := setupOrderRouter(app)

	w := doJSON(t, router, "PUT", "/order/table", map[string]interface{}{"table": 9})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9, app.Order().Table)

	w = doJSON(t, router, "PUT", "/order/table", map[string]interface{}{"table": 99})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 9, app.Order().Table)
}
