package models

import "time"

type Announcement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"size:100;not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`

	CreatedBy uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
