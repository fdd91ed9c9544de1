package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"appointly/models"
)

// Sentinel errors reported by the repository. The version conflict is a
// distinct signal so callers can tell "someone else updated this" apart
// from generic persistence failures.
var (
	ErrNotFound        = errors.New("appointment not found")
	ErrVersionConflict = errors.New("appointment version conflict")
)

// AppointmentRepository is the persistence contract for the appointment
// aggregate. Every write covers the appointment and all of its line items
// as one unit; every read returns the aggregate fully populated.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	// UpdateVersioned persists the aggregate only if the stored version
	// still equals expectedVersion, bumping it by one on success. A stale
	// version yields ErrVersionConflict; a missing document ErrNotFound.
	UpdateVersioned(ctx context.Context, appt *models.Appointment, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}
