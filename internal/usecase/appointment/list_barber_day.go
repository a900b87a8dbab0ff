package appointment

import (
	"context"
	"time"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/dto"
)

type ListBarberDay struct {
	repo domain.Repository
}

func NewListBarberDay(repo domain.Repository) *ListBarberDay {
	return &ListBarberDay{repo: repo}
}

// Execute lists one barber's day. An empty date means today.
func (uc *ListBarberDay) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]dto.AppointmentDTO, error) {

	date := time.Now()
	if dateStr != "" {
		parsed, err := parseLocalDate(dateStr)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	dayStart, dayEnd := dayBounds(date)

	aps, err := uc.repo.ListByBarberForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(aps), nil
}
