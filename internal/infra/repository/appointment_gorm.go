package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found", "Barbero no encontrado.")
		}
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found", "Servicio no encontrado.")
		}
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment re-checks the interval inside a transaction with a
// row lock on the conflicting range, so two racing bookings for the
// same chair serialize and exactly one wins.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				ap.BarberID,
				string(domain.StatusCancelled),
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrConflict("time_conflict", "El horario ya fue reservado.")
		}

		return tx.Create(ap).Error
	})

	if err != nil && !httperr.IsKind(err, httperr.KindConflict) {
		return httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// Transition reloads the row under FOR UPDATE before applying, so the
// lifecycle table is enforced against the true current state.
func (r *AppointmentGormRepository) Transition(
	ctx context.Context,
	id uint,
	apply func(*models.Appointment) error,
) (*models.Appointment, error) {

	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("appointment_not_found", "Cita no encontrada.")
			}
			return err
		}

		if err := apply(&ap); err != nil {
			return err
		}

		return tx.Save(&ap).Error
	})

	if err != nil {
		var ae httperr.AppError
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}

	return &ap, nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber.User").
		Where("client_id = ?", clientID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByBarberForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber.User").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber.User").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return aps, nil
}

// --------------------------------------------------
// Dashboard aggregates
// --------------------------------------------------

func (r *AppointmentGormRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", "Client").
		Count(&count).Error; err != nil {
		return 0, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountBarbers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
