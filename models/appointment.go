package models

import "time"

// Appointment statuses. Update requests may carry other status strings;
// these are the ones the service itself assigns.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
)

// Appointment is the booking aggregate: one appointment together with the
// service line items it exclusively owns. It is persisted and read as a
// single unit. IDs are UUID strings.
type Appointment struct {
	ID        string            `bson:"_id" json:"id"`
	UserID    string            `bson:"user_id" json:"userId"`
	Services  []ServiceLineItem `bson:"services" json:"services"`
	DateTime  time.Time         `bson:"date_time" json:"dateTime"`
	Guests    int               `bson:"guests" json:"guests"`
	Notes     string            `bson:"notes" json:"notes"`
	Status    string            `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"` // immutable after creation
	UpdatedAt time.Time         `bson:"updated_at" json:"updatedAt"`
	TotalCost float64           `bson:"total_cost" json:"totalCost"` // always the sum of line item prices
	Version   int64             `bson:"version" json:"version"`      // optimistic concurrency stamp
}

// ServiceLineItem is a snapshot of a catalogue service's price, duration
// and name captured at booking time. It is never re-fetched after that.
type ServiceLineItem struct {
	ID                 string  `bson:"id" json:"id"`
	ServiceCatalogueID string  `bson:"service_catalogue_id" json:"serviceCatalogueId"`
	Name               string  `bson:"name" json:"name"`
	Description        string  `bson:"description" json:"description"`
	Price              float64 `bson:"price" json:"price"`
	DurationInMinutes  int     `bson:"duration_in_minutes" json:"durationInMinutes"`
	AppointmentID      string  `bson:"appointment_id" json:"appointmentId"`
}

// TotalDurationMinutes sums the snapshot durations across all line items.
func (a *Appointment) TotalDurationMinutes() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationInMinutes
	}
	return total
}
