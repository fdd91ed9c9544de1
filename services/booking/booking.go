package booking

import (
	"context"
	"errors"
	"time"

	"appointly/catalogue"
	appointmentRepo "appointly/database/repository/appointment"
	"appointly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService orchestrates appointment booking: catalogue
// resolution, aggregate assembly, and optimistic-concurrency persistence.
// No step is ever retried automatically; every lower-layer failure is
// wrapped into a domain error exactly once, at the boundary where it
// occurs, and logged there.
type DefaultBookingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Catalogue catalogue.Client
	Logger    *zap.Logger
}

func NewDefaultBookingService(repo appointmentRepo.AppointmentRepository, cat catalogue.Client, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Catalogue: cat, Logger: logger}
}

// CreateAppointment resolves the requested services, assembles the
// aggregate and persists it atomically. Resolver failures surface
// unchanged; persistence failures come back as CreationError.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	resolved, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		s.Logger.Error("failed to resolve services for appointment creation",
			zap.String("userID", req.UserID), zap.Error(err))
		return nil, err
	}

	appt := assembleAppointment(req.UserID, req.DateTime, req.Notes, req.Guests, resolved)

	if err := s.Repo.Create(ctx, appt); err != nil {
		s.Logger.Error("failed to persist appointment",
			zap.String("userID", req.UserID), zap.Error(err))
		return nil, &CreationError{Cause: err}
	}

	s.Logger.Info("successfully created appointment",
		zap.String("appointmentID", appt.ID), zap.String("userID", req.UserID))
	return appt, nil
}

// GetAppointment returns the aggregate with its line items populated.
func (s *DefaultBookingService) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		s.Logger.Error("failed to fetch appointment",
			zap.String("appointmentID", id.String()), zap.Error(err))
		return nil, &RetrievalError{Cause: err}
	}
	return appt, nil
}

// ListAppointments returns all appointments, each with its line items.
func (s *DefaultBookingService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Repo.List(ctx)
	if err != nil {
		s.Logger.Error("failed to list appointments", zap.Error(err))
		return nil, &RetrievalError{Cause: err}
	}
	return appts, nil
}

// UpdateAppointment loads the aggregate, replaces its full service set
// from a fresh catalogue resolution, applies scalar changes and saves with
// the version read at load time. A stale version yields ConflictError;
// resolution and persistence failures come back as UpdateError so they
// classify as update failures, not creation failures.
func (s *DefaultBookingService) UpdateAppointment(ctx context.Context, id uuid.UUID, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		s.Logger.Error("failed to load appointment for update",
			zap.String("appointmentID", id.String()), zap.Error(err))
		return nil, &UpdateError{ID: id, Cause: err}
	}
	loadedVersion := appt.Version

	resolved, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		s.Logger.Error("failed to resolve services for appointment update",
			zap.String("appointmentID", id.String()), zap.Error(err))
		return nil, &UpdateError{ID: id, Cause: err}
	}

	replaceServices(appt, resolved)

	if !req.DateTime.IsZero() {
		appt.DateTime = req.DateTime
	}
	appt.Notes = req.Notes
	if req.Status != "" {
		appt.Status = req.Status
	}
	if req.Guests != nil {
		appt.Guests = *req.Guests
	}
	appt.UpdatedAt = time.Now()

	if err := s.Repo.UpdateVersioned(ctx, appt, loadedVersion); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrVersionConflict):
			s.Logger.Warn("concurrent modification detected",
				zap.String("appointmentID", id.String()), zap.Int64("version", loadedVersion))
			return nil, &ConflictError{ID: id}
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, &NotFoundError{ID: id}
		default:
			s.Logger.Error("failed to persist appointment update",
				zap.String("appointmentID", id.String()), zap.Error(err))
			return nil, &UpdateError{ID: id, Cause: err}
		}
	}

	s.Logger.Info("successfully updated appointment",
		zap.String("appointmentID", id.String()), zap.Int64("version", appt.Version))
	return appt, nil
}

// DeleteAppointment removes the aggregate; a missing appointment is
// NotFoundError so callers can tell "deleted" from "nothing to delete".
func (s *DefaultBookingService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.Delete(ctx, id.String()); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		s.Logger.Error("failed to delete appointment",
			zap.String("appointmentID", id.String()), zap.Error(err))
		return &DeletionError{ID: id, Cause: err}
	}
	s.Logger.Info("successfully deleted appointment", zap.String("appointmentID", id.String()))
	return nil
}

// BookedSlots computes the occupied half-hour slots for all appointments
// scheduled on the given day.
func (s *DefaultBookingService) BookedSlots(ctx context.Context, day time.Time) (*models.SlotsResponse, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appts, err := s.Repo.ListByDateRange(ctx, dayStart, dayEnd)
	if err != nil {
		s.Logger.Error("failed to load appointments for slot calculation",
			zap.String("day", dayStart.Format("2006-01-02")), zap.Error(err))
		return nil, &RetrievalError{Cause: err}
	}

	return &models.SlotsResponse{BookedSlots: occupiedSlots(appts)}, nil
}
