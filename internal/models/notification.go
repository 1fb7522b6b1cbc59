package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}
