package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/utils"
	"gorm.io/gorm"
)

// AutoMigrate membuat/menyesuaikan semua tabel
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Table{},
		&models.Reservation{},
		&models.Feedback{},
		&models.Menu{},
		&models.MenuRating{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
