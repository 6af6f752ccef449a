package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB membuka koneksi database sesuai environment.
// Default sqlite file lokal; set DB_DRIVER=mysql + DB_DSN untuk MySQL.
func InitDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = "resto.db"
		}
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	}
}

// BaseURL adalah alamat publik halaman menu, dipakai untuk link QR per meja.
func BaseURL() string {
	if base := os.Getenv("BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080/menu"
}

// QREndpoint mengembalikan endpoint render QR eksternal (kosong = default).
func QREndpoint() string {
	return os.Getenv("QR_ENDPOINT")
}
