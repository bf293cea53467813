// internal/server/response.go

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// APIResponse is the envelope of every JSON reply.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func newMeta(r *http.Request) *Meta {
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: RequestID(r.Context()),
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, resp APIResponse) {
	resp.Meta = newMeta(r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to write response", "error", err, "request_id", resp.Meta.RequestID)
	}
}

func respondOK(w http.ResponseWriter, r *http.Request, message string, data interface{}) {
	writeJSON(w, r, http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, APIResponse{Success: false, Message: message})
}
