package models

import "time"

// Reminder is a user-created note pinned to a calendar date.
type Reminder struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Date        Date      `gorm:"type:date;not null;index" json:"date"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
