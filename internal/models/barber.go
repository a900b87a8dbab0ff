package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Specialty         string `gorm:"size:100" json:"specialty"`
	YearsOfExperience int    `json:"yearsOfExperience"`

	// Opaque weekly pattern, e.g. "09:00-17:00" or
	// "09:00-13:00,14:00-17:00". Parsed by the schedule package.
	Availability string `gorm:"size:255" json:"availability"`

	Active bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
