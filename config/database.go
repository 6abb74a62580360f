package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

var DB *gorm.DB

// ConnectDB opens the process-wide database connection and migrates the
// schema. The connection lives for the lifetime of the process; handlers
// never open their own.
func ConnectDB(dsn string) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.SelectedClass{},
		&models.Payment{},
	); err != nil {
		slog.Error("Failed to run schema migration", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Connected to database")
}
