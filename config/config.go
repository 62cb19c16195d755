package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. MySQL is the deployment
// target; sqlite is the fallback so the app runs locally with no setup.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	gormConfig := &gorm.Config{TranslateError: true}

	switch driver {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASSWORD"),
				os.Getenv("DB_HOST"),
				os.Getenv("DB_PORT"),
				os.Getenv("DB_NAME"),
			)
		}
		return gorm.Open(mysql.Open(dsn), gormConfig)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "lunchvote.db"
		}
		return gorm.Open(sqlite.Open(path), gormConfig)
	}
}
