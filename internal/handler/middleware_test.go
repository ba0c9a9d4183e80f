package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msomdec/user-service/internal/handler"
)

func TestRequestLogger_PreservesResponse(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	w := httptest.NewRecorder()

	handler.RequestLogger(inner).ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected status 418 to pass through, got %d", w.Code)
	}
	if w.Body.String() != "short and stout" {
		t.Fatalf("expected body to pass through, got %q", w.Body.String())
	}
}

func TestMetrics_PreservesResponse(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/anything", nil)
	w := httptest.NewRecorder()

	handler.Metrics(inner).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 to pass through, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
