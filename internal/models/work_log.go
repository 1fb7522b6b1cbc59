package models

import "time"

type WorkLog struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StaffID uint `gorm:"index;not null" json:"staff_id"`

	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	DurationMin int `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
