package models

import (
	"fmt"
	"time"
)

// Status order
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	TableNumber  int         `gorm:"not null" json:"table_number"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Status       string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderItems   []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

// CalculateTotal menjumlahkan harga * quantity semua item
func (o *Order) CalculateTotal() float64 {
	var total float64
	for _, item := range o.OrderItems {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// GenerateOrderIdentifier menghasilkan identifier order untuk ditampilkan di dapur
func (o *Order) GenerateOrderIdentifier() string {
	return fmt.Sprintf("ORD-%d-T%d", o.ID, o.TableNumber)
}

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted:
		return true
	}
	return false
}
