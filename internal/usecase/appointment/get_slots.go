package appointment

import (
	"context"
	"time"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/domain/schedule"
)

type GetAvailableSlots struct {
	repo domain.Repository

	defaultWindows []schedule.Window
	granularityMin int
}

func NewGetAvailableSlots(
	repo domain.Repository,
	dayStart string,
	dayEnd string,
	granularityMin int,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:           repo,
		defaultWindows: []schedule.Window{{Start: dayStart, End: dayEnd}},
		granularityMin: granularityMin,
	}
}

// Execute computes the full slot grid for one barber and day. Pure
// read: lifecycle state is consulted, never touched.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
	durationMin int,
) ([]schedule.Slot, error) {

	date, err := parseLocalDate(dateStr)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	// An unparseable descriptor is not the client's problem; fall back
	// to the shop's default business hours.
	windows, err := schedule.ParseWindows(barber.Availability)
	if err != nil {
		windows = uc.defaultWindows
	}

	dayStart, dayEnd := dayBounds(date)
	existing, err := uc.repo.ListByBarberForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return schedule.ComputeSlots(schedule.SlotsInput{
		Windows:        windows,
		Date:           date,
		DurationMin:    durationMin,
		GranularityMin: uc.granularityMin,
		Existing:       existing,
		Now:            time.Now(),
	})
}
