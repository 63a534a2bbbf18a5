package database

import (
	"log"

	"lansdowne360/config"
	"lansdowne360/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database handle backed by a single SQLite file.
var DB *gorm.DB

// InitDB opens the SQLite database and migrates the schema.
func InitDB() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open database at %s: %v", config.AppConfig.DatabasePath, err)
	}

	if err := db.AutoMigrate(
		&models.Reservation{},
		&models.Room{},
		&models.Setting{},
		&models.AdminUser{},
	); err != nil {
		log.Fatalf("failed to migrate database schema: %v", err)
	}

	DB = db
	log.Println("Connected to SQLite successfully!")
}
