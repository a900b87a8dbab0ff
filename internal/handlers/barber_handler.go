package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navaja-app/barbershop-api/internal/domain/schedule"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/httpresp"
	"github.com/navaja-app/barbershop-api/internal/middleware"
	"github.com/navaja-app/barbershop-api/internal/models"
	ucAppointment "github.com/navaja-app/barbershop-api/internal/usecase/appointment"
)

type BarberHandler struct {
	db    *gorm.DB
	slots *ucAppointment.GetAvailableSlots
}

func NewBarberHandler(db *gorm.DB, slots *ucAppointment.GetAvailableSlots) *BarberHandler {
	return &BarberHandler{db: db, slots: slots}
}

// --------- Responses ---------

type BarberDTO struct {
	ID                uint   `json:"id"`
	UserID            uint   `json:"userId"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Specialty         string `json:"specialty,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Availability      string `json:"availability,omitempty"`
	IsActive          bool   `json:"isActive"`
}

func toBarberDTO(b *models.Barber) BarberDTO {
	return BarberDTO{
		ID:                b.ID,
		UserID:            b.UserID,
		FullName:          b.User.FullName,
		Email:             b.User.Email,
		Phone:             b.User.Phone,
		Specialty:         b.Specialty,
		YearsOfExperience: b.YearsOfExperience,
		Availability:      b.Availability,
		IsActive:          b.Active,
	}
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Preload("User").
		Where("active = ?", true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	out := make([]BarberDTO, 0, len(barbers))
	for i := range barbers {
		out = append(out, toBarberDTO(&barbers[i]))
	}

	httpresp.OK(c, out)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.Preload("User").First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	httpresp.OK(c, toBarberDTO(&barber))
}

// AvailableSlots returns the full grid for one barber and day, taken
// slots included, so the booking page can paint every cell.
func (h *BarberHandler) AvailableSlots(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("serviceDuration", "30"))
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duración inválida.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), id, dateStr, duration)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// UpdateMyAvailability lets a barber replace their weekly pattern. The
// descriptor must parse as working windows before it is stored.
func (h *BarberHandler) UpdateMyAvailability(c *gin.Context) {
	barberIDValue, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.Forbidden(c, "no_barber_profile", "No tienes perfil de barbero.")
		return
	}
	barberID := barberIDValue.(uint)

	availability, ok := bindStringOrField(c, "availability")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "Disponibilidad requerida.")
		return
	}

	if _, err := schedule.ParseWindows(availability); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("availability", availability).Error; err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Error al actualizar disponibilidad.")
		return
	}

	httpresp.OK(c, gin.H{"availability": availability})
}
