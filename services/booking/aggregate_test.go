package booking

import (
	"testing"
	"time"

	"appointly/models"

	"github.com/google/uuid"
)

func catalogueService(name string, price float64, duration int) models.CatalogueService {
	return models.CatalogueService{
		ID:                uuid.New(),
		Name:              name,
		Description:       name + " description",
		Price:             price,
		DurationInMinutes: duration,
		Active:            true,
	}
}

func TestAssembleAppointment(t *testing.T) {
	resolved := []models.CatalogueService{
		catalogueService("Haircut", 70.0, 30),
		catalogueService("Massage", 45.5, 60),
	}
	when := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	appt := assembleAppointment("user-1", when, "window seat", 2, resolved)

	if appt.ID == "" {
		t.Fatal("expected a generated appointment ID")
	}
	if appt.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want %q", appt.Status, models.StatusConfirmed)
	}
	if appt.Version != 0 {
		t.Errorf("version = %d, want 0", appt.Version)
	}
	if !appt.CreatedAt.Equal(appt.UpdatedAt) {
		t.Error("createdAt and updatedAt should match on assembly")
	}
	if len(appt.Services) != 2 {
		t.Fatalf("got %d line items, want 2", len(appt.Services))
	}
	if appt.TotalCost != 115.5 {
		t.Errorf("totalCost = %v, want 115.5", appt.TotalCost)
	}

	for i, item := range appt.Services {
		if item.AppointmentID != appt.ID {
			t.Errorf("line item %d back-reference = %s, want %s", i, item.AppointmentID, appt.ID)
		}
		if item.ID == "" {
			t.Errorf("line item %d missing generated ID", i)
		}
		if item.ServiceCatalogueID != resolved[i].ID.String() {
			t.Errorf("line item %d catalogue reference = %s, want %s", i, item.ServiceCatalogueID, resolved[i].ID)
		}
		if item.Price != resolved[i].Price || item.DurationInMinutes != resolved[i].DurationInMinutes {
			t.Errorf("line item %d did not snapshot price/duration", i)
		}
	}
}

func TestAssembleSingleService(t *testing.T) {
	resolved := []models.CatalogueService{catalogueService("Haircut", 70.0, 30)}

	appt := assembleAppointment("user-1", time.Now().Add(24*time.Hour), "", 0, resolved)

	if appt.TotalCost != 70.0 {
		t.Errorf("totalCost = %v, want 70.0", appt.TotalCost)
	}
}

func TestReplaceServices(t *testing.T) {
	original := []models.CatalogueService{catalogueService("Haircut", 70.0, 30)}
	appt := assembleAppointment("user-1", time.Now().Add(24*time.Hour), "", 0, original)
	oldItemID := appt.Services[0].ID

	replacement := []models.CatalogueService{
		catalogueService("Facial", 55.0, 45),
		catalogueService("Manicure", 25.0, 20),
	}
	replaceServices(appt, replacement)

	if len(appt.Services) != 2 {
		t.Fatalf("got %d line items after replace, want 2", len(appt.Services))
	}
	if appt.TotalCost != 80.0 {
		t.Errorf("totalCost = %v, want 80.0", appt.TotalCost)
	}
	for _, item := range appt.Services {
		if item.ID == oldItemID {
			t.Error("old line item survived the replacement")
		}
		if item.AppointmentID != appt.ID {
			t.Errorf("line item back-reference = %s, want %s", item.AppointmentID, appt.ID)
		}
	}

	// Total cost must track the live sum through repeated replacements.
	replaceServices(appt, original)
	if appt.TotalCost != 70.0 {
		t.Errorf("totalCost after second replace = %v, want 70.0", appt.TotalCost)
	}
	if len(appt.Services) != 1 {
		t.Errorf("got %d line items after second replace, want 1", len(appt.Services))
	}
}
