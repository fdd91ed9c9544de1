package models

import "time"

// SlotsResponse lists the occupied 30-minute slot start labels for a day,
// sorted lexicographically ("HH:MM" sorts chronologically within a day).
type SlotsResponse struct {
	BookedSlots []string `json:"bookedSlots"`
}

// ErrorResponse is the standard error body for every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
