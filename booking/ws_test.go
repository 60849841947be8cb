package booking

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// headerCountingRecorder counts WriteHeader calls so a handler writing a
// second status after a failed upgrade is caught.
type headerCountingRecorder struct {
	*httptest.ResponseRecorder
	writes int
}

func (r *headerCountingRecorder) WriteHeader(code int) {
	r.writes++
	r.ResponseRecorder.WriteHeader(code)
}

func TestAvailabilityWSRejectsPlainRequestOnce(t *testing.T) {
	rec := &headerCountingRecorder{ResponseRecorder: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/api/properties/villa-lucilla/availability/ws", nil)

	AvailabilityWS(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-websocket request, got %d", rec.Code)
	}
	if rec.writes != 1 {
		t.Fatalf("expected exactly one status write, got %d", rec.writes)
	}
}
