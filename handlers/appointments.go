package handlers

import (
	"net/http"
	"time"

	"appointly/models"
	"appointly/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking engine over REST.
type AppointmentHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewAppointmentHandler(service booking.BookingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: service, Logger: logger}
}

// CreateAppointment handles POST /api/v1/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "Validation Error", "Validation failed for request: "+err.Error())
		return
	}

	appt, err := h.Service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointments handles GET /api/v1/appointments.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Service.ListAppointments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointment handles GET /api/v1/appointments/:id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "Invalid Argument", "invalid appointment ID: "+c.Param("id"))
		return
	}

	appt, err := h.Service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointment handles PUT /api/v1/appointments/:id.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "Invalid Argument", "invalid appointment ID: "+c.Param("id"))
		return
	}

	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "Validation Error", "Validation failed for request: "+err.Error())
		return
	}

	appt, err := h.Service.UpdateAppointment(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment handles DELETE /api/v1/appointments/:id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "Invalid Argument", "invalid appointment ID: "+c.Param("id"))
		return
	}

	if err := h.Service.DeleteAppointment(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BookedSlots handles GET /api/v1/appointments/slots?date=YYYY-MM-DD.
func (h *AppointmentHandler) BookedSlots(c *gin.Context) {
	dateStr := c.Query("date")
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		writeBadRequest(c, "Invalid Argument", "invalid date, expected YYYY-MM-DD: "+dateStr)
		return
	}

	slots, err := h.Service.BookedSlots(c.Request.Context(), day)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
