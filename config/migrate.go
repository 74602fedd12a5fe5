package config

import (
	"github.com/levarentz132/storing/models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.StockItem{},
		&models.Transaction{},
	)
}
