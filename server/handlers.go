package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ttgt/schedparse"
	"github.com/ttgt/schedparse/fetch"
)

// Russian-locale date-time, as shown to the app's users
const timestampLayout = "02.01.2006, 15:04:05"

const (
	msgGroupRequired       = "group is required"
	msgEmptyDocument       = "empty or missing document"
	msgReplacementsFailed  = "failed to load replacements"
	msgScheduleFailed      = "failed to load schedule"
	msgUpstreamUnavailable = "upstream document unavailable"
)

func (s *Server) handleReplacements(w http.ResponseWriter, r *http.Request) {
	group := strings.TrimSpace(r.PathValue("group"))
	if group == "" {
		s.handleMissingGroup(w, r)
		return
	}
	log := s.requestLogger(r).With("group", group)

	doc, err := s.fetcher.Fetch(r.Context(), fetch.ExpandURL(s.config.ReplacementsURL, group))
	if err != nil {
		s.writeFetchError(w, log, err, msgReplacementsFailed)
		return
	}

	pages, warnings, err := s.open(doc).Replacements(group)
	if err != nil {
		log.Error("parsing replacements", "url", doc.URL, "error", err)
		writeError(w, msgReplacementsFailed, http.StatusInternalServerError)
		return
	}
	logWarnings(log, warnings)

	writeJSON(w, replacementsResponse{Success: true, Replacements: pages}, http.StatusOK)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	group := strings.TrimSpace(r.PathValue("group"))
	if group == "" {
		s.handleMissingGroup(w, r)
		return
	}
	log := s.requestLogger(r).With("group", group)

	doc, err := s.fetcher.Fetch(r.Context(), fetch.ExpandURL(s.config.ScheduleURLTemplate, group))
	if err != nil {
		s.writeFetchError(w, log, err, msgScheduleFailed)
		return
	}

	weeks, warnings, err := s.open(doc).Schedule()
	if err != nil {
		log.Error("parsing schedule", "url", doc.URL, "error", err)
		writeError(w, msgScheduleFailed, http.StatusInternalServerError)
		return
	}
	logWarnings(log, warnings)

	writeJSON(w, scheduleResponse{
		Success:        true,
		StructuredData: weeks,
		Timestamp:      s.config.Now().In(s.config.Location).Format(timestampLayout),
	}, http.StatusOK)
}

func (s *Server) handleMissingGroup(w http.ResponseWriter, r *http.Request) {
	writeError(w, msgGroupRequired, http.StatusBadRequest)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{Success: true, Status: "ok"}, http.StatusOK)
}

func (s *Server) writeFetchError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	log.Error("fetching document", "error", err)

	switch {
	case errors.Is(err, fetch.ErrEmptyPayload):
		writeError(w, msgEmptyDocument, http.StatusInternalServerError)
	case errors.Is(err, fetch.ErrUpstreamStatus):
		writeError(w, msgUpstreamUnavailable, http.StatusBadGateway)
	default:
		writeError(w, fallback, http.StatusInternalServerError)
	}
}

func logWarnings(log *slog.Logger, warnings []schedparse.Warning) {
	if len(warnings) == 0 {
		return
	}
	log.Warn("extraction warnings", "count", len(warnings), "warnings", schedparse.FormatWarnings(warnings))
}
