package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/navaja-app/barbershop-api/internal/domain/appointment"
	"github.com/navaja-app/barbershop-api/internal/domain/role"
	"github.com/navaja-app/barbershop-api/internal/dto"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/httpresp"
	"github.com/navaja-app/barbershop-api/internal/middleware"
	ucAppointment "github.com/navaja-app/barbershop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateStatus
	cancel       *ucAppointment.CancelAppointment
	listMy       *ucAppointment.ListMyAppointments
	listDay      *ucAppointment.ListBarberDay
	listRange    *ucAppointment.ListAllByRange
	stats        *ucAppointment.GetStats
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	cancel *ucAppointment.CancelAppointment,
	listMy *ucAppointment.ListMyAppointments,
	listDay *ucAppointment.ListBarberDay,
	listRange *ucAppointment.ListAllByRange,
	stats *ucAppointment.GetStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		cancel:       cancel,
		listMy:       listMy,
		listDay:      listDay,
		listRange:    listRange,
		stats:        stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barberId" binding:"required"`
	ServiceID uint   `json:"serviceId" binding:"required"`
	DateTime  string `json:"dateTime" binding:"required"`
	Notes     string `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

func actorFromContext(c *gin.Context) ucAppointment.Actor {
	actor := ucAppointment.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Role:   c.MustGet(middleware.ContextUserRole).(role.Role),
	}

	if v, ok := c.Get(middleware.ContextBarberID); ok {
		id := v.(uint)
		actor.BarberID = &id
	}

	return actor
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		ClientID:  clientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		DateTime:  req.DateTime,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	statusStr, ok := bindStringOrField(c, "status")
	if !ok {
		httperr.BadRequest(c, "missing_status", "Estado requerido.")
		return
	}

	target, err := domain.ParseStatus(statusStr)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), actorFromContext(c), id, target)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// CANCEL (DELETE maps here; rows are never removed)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), actorFromContext(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listMy.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) BarberAppointments(c *gin.Context) {
	barberIDValue, ok := c.Get(middleware.ContextBarberID)
	if !ok {
		httperr.Forbidden(c, "no_barber_profile", "No tienes perfil de barbero.")
		return
	}

	aps, err := h.listDay.Execute(c.Request.Context(), barberIDValue.(uint), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) All(c *gin.Context) {
	aps, err := h.listRange.Execute(
		c.Request.Context(),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, aps)
}

// ======================================================
// STATS
// ======================================================

func (h *AppointmentHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, stats)
}
