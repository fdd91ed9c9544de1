package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointly/models"

	"github.com/gin-gonic/gin"
)

func newRecoveringRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	router := newRecoveringRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Status != http.StatusInternalServerError {
		t.Errorf("body status = %d, want 500", body.Status)
	}
	if body.Error != "Internal Server Error" {
		t.Errorf("title = %q, want Internal Server Error", body.Error)
	}
	if body.Message == "" {
		t.Error("message must not be empty")
	}
	if body.Path != "/boom" {
		t.Errorf("path = %q, want /boom", body.Path)
	}
	if body.Timestamp.IsZero() {
		t.Error("timestamp must be set")
	}
}

func TestErrorHandlerPassesThrough(t *testing.T) {
	router := newRecoveringRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}
