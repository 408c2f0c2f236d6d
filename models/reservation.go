package models

import "time"

// Status reservasi
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation merujuk meja lewat nomor meja (bukan foreign key), jadi boleh menggantung
// kalau mejanya dihapus.
type Reservation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	TableNumber  int       `gorm:"not null;index:idx_reservation_table_date" json:"table_number"`
	Date         string    `gorm:"type:varchar(20);not null;index:idx_reservation_table_date" json:"date"`
	Time         string    `gorm:"type:varchar(20);not null" json:"time"`
	Status       string    `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// IsActive -> reservasi yang masih menempati meja pada tanggalnya
func (r Reservation) IsActive() bool {
	return r.Status != ReservationCancelled
}
