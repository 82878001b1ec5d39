package database

import (
	"github.com/fruitstand/fruitstand-api/models"
	"gorm.io/gorm"
)

// Migrate ensures the four store tables exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.LineItem{},
	)
}
