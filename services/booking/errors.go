package booking

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports an operation against an appointment ID that does
// not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("appointment with ID %s not found", e.ID)
}

// ConflictError reports that the appointment was modified by another
// writer between load and save. Callers should reload and retry.
type ConflictError struct {
	ID uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("appointment %s was modified by another writer", e.ID)
}

// LookupError reports that the catalogue could not supply a record for
// every requested service: an unknown identifier, or a duplicate set that
// collapsed on resolution.
type LookupError struct {
	Message string
	Cause   error
}

func (e *LookupError) Error() string { return e.Message }

func (e *LookupError) Unwrap() error { return e.Cause }

// InactiveServiceError reports a resolved service whose active flag is
// off. Booking an inactive service is never allowed, partially or fully.
type InactiveServiceError struct {
	ServiceID uuid.UUID
	Name      string
}

func (e *InactiveServiceError) Error() string {
	return fmt.Sprintf("service '%s' is currently inactive", e.Name)
}

// UnavailableError reports that the catalogue or another collaborator was
// unreachable. Not to be conflated with "does not exist".
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("service catalogue is currently unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// CreationError wraps any failure during appointment creation that is not
// already a more specific domain error.
type CreationError struct {
	Cause error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("an unexpected error occurred during appointment creation: %v", e.Cause)
}

func (e *CreationError) Unwrap() error { return e.Cause }

// UpdateError wraps a persistence failure during appointment update.
type UpdateError struct {
	ID    uuid.UUID
	Cause error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("an unexpected error occurred during appointment update: %v", e.Cause)
}

func (e *UpdateError) Unwrap() error { return e.Cause }

// DeletionError wraps a persistence failure during appointment deletion.
type DeletionError struct {
	ID    uuid.UUID
	Cause error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("an unexpected error occurred during appointment deletion: %v", e.Cause)
}

func (e *DeletionError) Unwrap() error { return e.Cause }

// RetrievalError wraps a failure while reading appointments or computing
// booked slots.
type RetrievalError struct {
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("error retrieving appointments: %v", e.Cause)
}

func (e *RetrievalError) Unwrap() error { return e.Cause }
