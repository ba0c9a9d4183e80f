package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message    string        `json:"message"`
	StatusCode int           `json:"statusCode"`
	Code       string        `json:"code,omitempty"`
	Details    []fieldDetail `json:"details,omitempty"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code and body.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeData wraps a successful result in the {data: ...} envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataEnvelope{Data: data})
}

// writeError sends the {error: ...} envelope with a stable code clients
// can branch on.
func writeError(w http.ResponseWriter, status int, message, code string, details []fieldDetail) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Message:    message,
		StatusCode: status,
		Code:       code,
		Details:    details,
	}})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
