package models

import "time"

// Table -> meja fisik. IsAvailable adalah flag global, bukan ketersediaan per tanggal.
type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber int       `gorm:"not null;uniqueIndex" json:"table_number"`
	Seats       int       `gorm:"not null" json:"seats"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
