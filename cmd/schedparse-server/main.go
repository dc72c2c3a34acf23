// Command schedparse-server serves the timetable API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	"github.com/ttgt/schedparse/config"
	"github.com/ttgt/schedparse/fetch"
	"github.com/ttgt/schedparse/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, loadedEnv, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}
	if loadedEnv {
		logger.Info("loaded environment variables from .env file")
	} else {
		logger.Warn("no .env file found, using system environment variables")
	}

	fetcher := fetch.NewWithConfig(fetch.Config{
		Timeout:     cfg.FetchTimeout,
		MaxBytes:    cfg.MaxDocumentBytes,
		UserAgent:   "schedparse/1.0",
		FollowLinks: true,
	})

	srv := server.New(server.Config{
		ReplacementsURL:     cfg.ReplacementsURL,
		ScheduleURLTemplate: cfg.ScheduleURLTemplate,
		Location:            cfg.Location,
		Logger:              logger,
	}, fetcher)

	httpServer := &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.FetchTimeout + 30*time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("listening", "addr", cfg.Addr, "error", err)
		os.Exit(1)
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", "addr", ln.Addr().String(), "max_connections", cfg.MaxConnections)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serving", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
