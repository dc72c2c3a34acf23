package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ttgt/schedparse/model"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type replacementsResponse struct {
	Success      bool                    `json:"success"`
	Replacements []model.ReplacementPage `json:"replacements"`
}

type scheduleResponse struct {
	Success        bool                   `json:"success"`
	StructuredData [][]model.ScheduleWeek `json:"structuredData"`
	Timestamp      string                 `json:"timestamp"`
}

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// writeJSON writes data as a JSON response.
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

// writeError writes a failure envelope.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, errorResponse{Success: false, Error: message}, statusCode)
}
