package models

import (
	"time"

	"github.com/google/uuid"
)

// CreateAppointmentRequest is the payload for booking a new appointment.
// Total cost is always derived from the catalogue; callers cannot supply
// prices.
type CreateAppointmentRequest struct {
	UserID     string      `json:"userId" binding:"required"`
	ServiceIDs []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	DateTime   time.Time   `json:"dateTime" binding:"required"`
	Guests     int         `json:"guests" binding:"gte=0"`
	Notes      string      `json:"notes"`
}

// UpdateAppointmentRequest replaces the appointment's full service set and
// optionally changes its scalar fields. Zero-valued dateTime and empty
// status leave the stored values untouched.
type UpdateAppointmentRequest struct {
	ServiceIDs []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	DateTime   time.Time   `json:"dateTime"`
	Guests     *int        `json:"guests" binding:"omitempty,gte=0"`
	Notes      string      `json:"notes"`
	Status     string      `json:"status"`
}
