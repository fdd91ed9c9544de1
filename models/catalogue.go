package models

import "github.com/google/uuid"

// CatalogueService is the read-only view of a service record as served by
// the external catalogue. Only projected fields are ever copied into an
// appointment; the record itself is never persisted locally.
type CatalogueService struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	DurationInMinutes int       `json:"durationInMinutes"`
	Active            bool      `json:"active"`
}
