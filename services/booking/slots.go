package booking

import (
	"sort"
	"time"

	"appointly/models"
)

const slotDuration = 30 * time.Minute

// occupiedSlots computes the set of occupied 30-minute slot-start labels
// for a day's appointments. Slots are anchored to each appointment's own
// start time, not to a :00/:30 grid: an appointment starting 10:07 with
// 65 minutes of services occupies 10:07 and 10:37. The last slot emitted
// must fit entirely before the appointment ends (slot <= end - 30min), so
// a zero-duration appointment occupies nothing. Duplicate labels across
// appointments collapse; the result is sorted lexicographically, which is
// chronological for same-day HH:MM labels.
func occupiedSlots(appointments []models.Appointment) []string {
	booked := make(map[string]struct{})

	for _, appt := range appointments {
		start := appt.DateTime
		end := start.Add(time.Duration(appt.TotalDurationMinutes()) * time.Minute)

		for slot := start; !slot.After(end.Add(-slotDuration)); slot = slot.Add(slotDuration) {
			booked[slot.Format("15:04")] = struct{}{}
		}
	}

	labels := make([]string, 0, len(booked))
	for label := range booked {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
