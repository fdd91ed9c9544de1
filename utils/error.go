package utils

import (
	"net/http"
	"time"

	"appointly/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Timestamp: time.Now(),
					Status:    http.StatusInternalServerError,
					Error:     "Internal Server Error",
					Message:   "An unexpected error occurred. Please try again later.",
					Path:      c.Request.URL.Path,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
