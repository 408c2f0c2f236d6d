package models

import "time"

// MenuRating menyimpan nama menu secara denormalisasi; agregasi rating dilakukan per nama.
type MenuRating struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MenuID       uint      `gorm:"not null;index" json:"menu_id"`
	MenuItemName string    `gorm:"type:varchar(255);not null;index" json:"menu_item_name"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	OrderID      *uint     `json:"order_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
