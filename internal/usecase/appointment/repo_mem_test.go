package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

// memRepo is an in-memory Repository for usecase tests. A single mutex
// plays the role the database transactions play in production: the
// overlap check plus insert, and each Transition, run as one critical
// section.
type memRepo struct {
	mu sync.Mutex

	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment
	nextID       uint

	clientCount int64
	barberCount int64
}

func newMemRepo() *memRepo {
	return &memRepo{
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

var _ domain.Repository = (*memRepo)(nil)

func (r *memRepo) addBarber(b models.Barber) *models.Barber {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.barbers[b.ID] = &b
	return &b
}

func (r *memRepo) addService(s models.Service) *models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[s.ID] = &s
	return &s
}

func (r *memRepo) addAppointment(ap models.Appointment) *models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.ID = r.nextID
	r.nextID++
	r.appointments[ap.ID] = &ap
	return &ap
}

func (r *memRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.barbers[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, httperr.ErrNotFound("barber_not_found", "Barbero no encontrado.")
}

func (r *memRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, httperr.ErrNotFound("service_not_found", "Servicio no encontrado.")
}

func (r *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.BarberID != ap.BarberID {
			continue
		}
		if domain.Overlaps(existing, ap.StartTime, ap.EndTime) {
			return httperr.ErrConflict("time_conflict", "El horario ya está reservado.")
		}
	}

	ap.ID = r.nextID
	r.nextID++
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *memRepo) Transition(
	_ context.Context,
	id uint,
	apply func(*models.Appointment) error,
) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Cita no encontrada.")
	}

	working := *ap
	if err := apply(&working); err != nil {
		return nil, err
	}
	r.appointments[id] = &working

	copied := working
	return &copied, nil
}

func (r *memRepo) ListByClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *memRepo) ListByBarberForDay(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID == barberID && !ap.StartTime.Before(dayStart) && ap.StartTime.Before(dayEnd) {
			out = append(out, *ap)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *memRepo) ListForRange(
	_ context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *memRepo) CountClients(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clientCount, nil
}

func (r *memRepo) CountBarbers(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.barberCount, nil
}

func sortByStart(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		return aps[i].StartTime.Before(aps[j].StartTime)
	})
}
