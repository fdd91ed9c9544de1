package booking

import (
	"context"
	"time"

	"appointly/models"

	"github.com/google/uuid"
)

// BookingService is the appointment booking engine's contract.
type BookingService interface {
	CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	BookedSlots(ctx context.Context, day time.Time) (*models.SlotsResponse, error)
}
