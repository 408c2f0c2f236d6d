package models

import "time"

const (
	FeedbackSourceWeb     = "web"
	FeedbackSourceChatbot = "chatbot"
)

type Feedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	Source       string    `gorm:"type:varchar(20);not null;default:'web'" json:"source"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
}
