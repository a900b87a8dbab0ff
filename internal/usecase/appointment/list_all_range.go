package appointment

import (
	"context"
	"time"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/dto"
)

type ListAllByRange struct {
	repo domain.Repository
}

func NewListAllByRange(repo domain.Repository) *ListAllByRange {
	return &ListAllByRange{repo: repo}
}

// Execute is the administrative range query. Missing bounds default to
// today; the end date is inclusive.
func (uc *ListAllByRange) Execute(
	ctx context.Context,
	startStr string,
	endStr string,
) ([]dto.AppointmentDTO, error) {

	start := time.Now()
	if startStr != "" {
		parsed, err := parseLocalDate(startStr)
		if err != nil {
			return nil, err
		}
		start = parsed
	}

	end := start
	if endStr != "" {
		parsed, err := parseLocalDate(endStr)
		if err != nil {
			return nil, err
		}
		end = parsed
	}

	rangeStart, _ := dayBounds(start)
	_, rangeEnd := dayBounds(end)

	aps, err := uc.repo.ListForRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(aps), nil
}
