package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"fullName"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	RoleID uint   `json:"roleId"`
	Role   string `gorm:"size:20;not null" json:"role"`

	TwoFactorEnabled bool `gorm:"default:false" json:"twoFactorEnabled"`

	// Set when the user works the chair, links to the Barber profile.
	BarberID *uint `json:"barberId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
