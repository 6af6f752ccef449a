package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/resto-lite/config"
	"github.com/yeremiapane/resto-lite/middlewares"
	"github.com/yeremiapane/resto-lite/router"
	"github.com/yeremiapane/resto-lite/state"
	"github.com/yeremiapane/resto-lite/store"
	"github.com/yeremiapane/resto-lite/utils"
)

func main() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Buka database untuk slot penyimpanan
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	st, err := store.New(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to prepare storage slots: %v", err)
	}

	// Muat seluruh state aplikasi dari slot; catalog korup jatuh ke default
	app := state.New(st)

	r := router.SetupRouter(app)

	// Rate limiter global per IP (50 request / detik)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
