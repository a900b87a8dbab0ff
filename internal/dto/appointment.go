package dto

import (
	"time"

	"github.com/navaja-app/barbershop-api/internal/models"
)

// Wire format for timestamps: naive local, no offset, matching what
// the dashboards send back on create.
const DateTimeLayout = "2006-01-02T15:04:05"

type AppointmentDTO struct {
	ID       uint   `json:"id"`
	DateTime string `json:"dateTime"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`

	ClientID    uint   `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	BarberID   uint   `json:"barberId"`
	BarberName string `json:"barberName"`

	ServiceID       uint    `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration int     `json:"serviceDuration"`

	CreatedAt string `json:"createdAt"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:       ap.ID,
		DateTime: ap.StartTime.Format(DateTimeLayout),
		Status:   ap.Status,
		Notes:    ap.Notes,

		ClientID:    ap.ClientID,
		ClientName:  ap.Client.FullName,
		ClientPhone: ap.Client.Phone,

		BarberID:   ap.BarberID,
		BarberName: ap.Barber.User.FullName,

		ServiceID:       ap.ServiceID,
		ServiceName:     ap.ServiceName,
		ServicePrice:    ap.ServicePrice,
		ServiceDuration: ap.ServiceDuration,

		CreatedAt: ap.CreatedAt.Format(time.RFC3339),
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
