package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/resto-lite/config"
	"github.com/yeremiapane/resto-lite/controllers"
	"github.com/yeremiapane/resto-lite/middlewares"
	"github.com/yeremiapane/resto-lite/state"
)

func SetupRouter(app *state.App) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	menuCtrl := controllers.NewMenuController(app)
	orderCtrl := controllers.NewOrderController(app)
	kitchenCtrl := controllers.NewKitchenController(app)
	tableCtrl := controllers.NewTableController(config.BaseURL(), config.QREndpoint())
	galleryCtrl := controllers.NewGalleryController(app)
	backupCtrl := controllers.NewBackupController(app)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Catalog
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	r.POST("/menus/:menu_id/image", menuCtrl.UploadMenuImage)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	// Order aktif (ephemeral, satu meja)
	r.GET("/order", orderCtrl.GetOrder)
	r.POST("/order/items", orderCtrl.AddItem)
	r.PATCH("/order/items/:index", orderCtrl.ChangeQty)
	r.DELETE("/order/items/:index", orderCtrl.RemoveItem)
	r.DELETE("/order", orderCtrl.ClearOrder)
	r.PUT("/order/table", orderCtrl.SetTable)

	// Antrian dapur
	r.GET("/kitchen", kitchenCtrl.GetTickets)
	r.POST("/kitchen/submit", kitchenCtrl.SubmitOrder)
	r.PATCH("/kitchen/:ticket_id/done", kitchenCtrl.MarkDone)

	// Meja & QR
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table/qr", tableCtrl.GetTableQR)

	// Gallery
	r.GET("/gallery", galleryCtrl.GetGallery)
	r.POST("/gallery", galleryCtrl.UploadImage)
	r.DELETE("/gallery/:image_id", galleryCtrl.DeleteImage)

	// Backup
	r.GET("/export", backupCtrl.Export)
	r.POST("/import", backupCtrl.Import)

	// Layar dapur (websocket)
	r.GET("/ws/kitchen", controllers.KDSHandler)

	return r
}
