package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all HTTP routes on the given mux. API routes are
// mounted under the given prefix; everything unmatched gets the JSON 404.
func RegisterRoutes(mux *http.ServeMux, prefix string, users *UserHandler, health *HealthHandler) {
	mux.HandleFunc("POST "+prefix+"/users", users.HandleCreate)
	mux.HandleFunc("GET "+prefix+"/users", users.HandleList)
	mux.HandleFunc("GET "+prefix+"/users/{id}", users.HandleGet)
	mux.HandleFunc("PUT "+prefix+"/users/{id}", users.HandleUpdate)
	mux.HandleFunc("DELETE "+prefix+"/users/{id}", users.HandleDelete)
	mux.HandleFunc("GET "+prefix+"/health", health.HandleCheck)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", HandleNotFound)
}

// HandleNotFound answers unmatched routes with the error envelope.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound,
		"route "+r.Method+" "+r.URL.Path+" not found", codeNotFound, nil)
}
