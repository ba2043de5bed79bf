package models

import (
	"time"
)

// Notification records a transient notice shown to the user
type Notification struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Panel       string    `gorm:"index" json:"panel"` // Owning panel (accounts/messages/scraper/bots)
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
