package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `json:"clientId"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `json:"barberId"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Snapshot of the service at booking time. Later price edits must
	// not change what an existing booking costs.
	ServiceName     string  `gorm:"size:100" json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration int     `json:"serviceDuration"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
