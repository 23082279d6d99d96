package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ideaforge/forge-api/internal/api/shared"
)

// TestTraceMiddlewareAddsTraceID verifies the downstream handler sees a
// trace ID in its request context.
func TestTraceMiddlewareAddsTraceID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	TraceMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, seen, shared.TraceIDLength*2, "handler should observe a full trace ID")
}
