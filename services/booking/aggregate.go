package booking

import (
	"time"

	"appointly/models"

	"github.com/google/uuid"
)

// snapshotLineItems copies the projected fields of each resolved catalogue
// record into fresh line items owned by the given appointment. Price and
// duration are captured at this instant and never re-fetched.
func snapshotLineItems(appointmentID string, resolved []models.CatalogueService) []models.ServiceLineItem {
	items := make([]models.ServiceLineItem, 0, len(resolved))
	for _, svc := range resolved {
		items = append(items, models.ServiceLineItem{
			ID:                 uuid.New().String(),
			ServiceCatalogueID: svc.ID.String(),
			Name:               svc.Name,
			Description:        svc.Description,
			Price:              svc.Price,
			DurationInMinutes:  svc.DurationInMinutes,
			AppointmentID:      appointmentID,
		})
	}
	return items
}

func sumPrices(items []models.ServiceLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}

// assembleAppointment builds the complete aggregate in memory with no I/O.
// Total cost is derived from the snapshotted line items; it is never set
// independently.
func assembleAppointment(userID string, dateTime time.Time, notes string, guests int, resolved []models.CatalogueService) *models.Appointment {
	now := time.Now()
	appt := &models.Appointment{
		ID:        uuid.New().String(),
		UserID:    userID,
		DateTime:  dateTime,
		Guests:    guests,
		Notes:     notes,
		Status:    models.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   0,
	}
	appt.Services = snapshotLineItems(appt.ID, resolved)
	appt.TotalCost = sumPrices(appt.Services)
	return appt
}

// replaceServices discards all current line items and installs a fresh
// snapshot set, recomputing the total cost in the same step. The old items
// are destroyed with the aggregate's next persisted write, not detached.
func replaceServices(appt *models.Appointment, resolved []models.CatalogueService) {
	appt.Services = snapshotLineItems(appt.ID, resolved)
	appt.TotalCost = sumPrices(appt.Services)
}
