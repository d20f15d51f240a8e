package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/boom", nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler(t *testing.T) {
	t.Run("maps app errors to their status and code", func(t *testing.T) {
		rec := serveWithError(t, apperrors.ErrGoalNotFound)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		var body map[string]map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if body["error"]["code"] != "GOAL_NOT_FOUND" {
			t.Errorf("expected GOAL_NOT_FOUND, got %q", body["error"]["code"])
		}
	})

	t.Run("hides unexpected errors behind a generic 500", func(t *testing.T) {
		rec := serveWithError(t, errors.New("db exploded"))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		var body map[string]map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if body["error"]["code"] != "INTERNAL_ERROR" {
			t.Errorf("expected INTERNAL_ERROR, got %q", body["error"]["code"])
		}
		if body["error"]["message"] == "db exploded" {
			t.Error("internal error detail leaked to the client")
		}
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}
