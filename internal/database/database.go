package database

import (
	"log"

	"github.com/gocongress/congress-api/internal/config"
	"github.com/gocongress/congress-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.User{},
		&models.APIKey{},
		&models.Attendee{},
		&models.PlanCategory{},
		&models.Plan{},
		&models.AttendeePlan{},
		&models.AttendeePlanDate{},
		&models.Activity{},
		&models.Tournament{},
		&models.Discount{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
