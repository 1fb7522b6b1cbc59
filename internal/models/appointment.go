package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingCode string `gorm:"size:36;uniqueIndex" json:"booking_code"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// StaffID stays NULL until an admin assigns someone.
	StaffID *uint `gorm:"uniqueIndex:idx_staff_slot" json:"staff_id"`
	Staff   *User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	ServiceID uint    `gorm:"uniqueIndex:idx_service_slot" json:"service_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date string `gorm:"size:10;uniqueIndex:idx_service_slot;uniqueIndex:idx_staff_slot" json:"date"`
	Time string `gorm:"size:5;uniqueIndex:idx_service_slot;uniqueIndex:idx_staff_slot" json:"time"`

	// Price is captured from the service at booking time and never re-derived.
	Price float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string `gorm:"size:255" json:"notes"`
	HealthNotes string `gorm:"size:255" json:"health_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
