package handlers

import (
	"errors"
	"net/http"
	"time"

	"appointly/models"
	"appointly/services/booking"

	"github.com/gin-gonic/gin"
)

const conflictMessage = "The booking you are trying to update has been modified by another user. " +
	"Please retrieve the latest version and try again."

// writeError maps a domain error onto the standard error body. Every
// failure leaves the handler as a stable classification with a title,
// never a raw stack trace.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	message := err.Error()

	var notFound *booking.NotFoundError
	var conflict *booking.ConflictError
	var lookup *booking.LookupError
	var inactive *booking.InactiveServiceError
	var creation *booking.CreationError
	var update *booking.UpdateError
	var deletion *booking.DeletionError
	var retrieval *booking.RetrievalError

	// UpdateError is matched before the creation family: the update flow
	// wraps its resolver failures, and those must classify as update
	// failures even though a LookupError sits in the chain.
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		title = "Not Found"
	case errors.As(err, &conflict):
		status = http.StatusConflict
		title = "Concurrency Conflict"
		message = conflictMessage
	case errors.As(err, &update):
		title = "Appointment Update Error"
	case errors.As(err, &lookup), errors.As(err, &inactive), errors.As(err, &creation):
		title = "Booking Creation Error"
	case errors.As(err, &deletion):
		title = "Appointment Deletion Error"
	case errors.As(err, &retrieval):
		title = "Booking Retrieval Error"
	}

	c.JSON(status, models.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// writeBadRequest reports binding and argument failures.
func writeBadRequest(c *gin.Context, title, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     title,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
