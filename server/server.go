package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ttgt/schedparse"
	"github.com/ttgt/schedparse/fetch"
	"github.com/ttgt/schedparse/ocr"
)

// Fetcher downloads a source document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Document, error)
}

// Config holds configuration for the HTTP server
type Config struct {
	// ReplacementsURL locates the replacements sheet
	ReplacementsURL string

	// ScheduleURLTemplate locates a group's timetable; %s is the group
	ScheduleURLTemplate string

	// Location is the time zone of schedule timestamps
	// Default: UTC
	Location *time.Location

	// Logger receives request and error logs
	// Default: slog.Default()
	Logger *slog.Logger

	// Now is the clock for timestamps
	// Default: time.Now
	Now func() time.Time
}

// Server serves the timetable API.
type Server struct {
	config  Config
	fetcher Fetcher
	logger  *slog.Logger

	// open builds an extractor over a fetched document
	open func(doc *fetch.Document) *schedparse.Extractor
}

// New creates a server that downloads documents with fetcher.
func New(config Config, fetcher Fetcher) *Server {
	if config.Location == nil {
		config.Location = time.UTC
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Server{
		config:  config,
		fetcher: fetcher,
		logger:  config.Logger,
		open:    openDocument,
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/replacements/{group}", s.handleReplacements)
	mux.HandleFunc("GET /api/replacements/{$}", s.handleMissingGroup)
	mux.HandleFunc("GET /api/schedule/{group}", s.handleSchedule)
	mux.HandleFunc("GET /api/schedule/{$}", s.handleMissingGroup)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	h = s.RecoverMiddleware(h)
	h = s.LoggingMiddleware(h)
	h = CORSMiddleware(h)
	h = RequestIDMiddleware(h)
	return h
}

// openDocument picks the decoder for a fetched document: PDF by magic
// number, then scanned images, then PDF again so the decoder reports the
// failure.
func openDocument(doc *fetch.Document) *schedparse.Extractor {
	if !doc.IsPDF() && ocr.IsImage(doc.Data) {
		return schedparse.FromImage(doc.Data)
	}
	return schedparse.FromBytes(doc.Data)
}
