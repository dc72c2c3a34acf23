// Package config loads service configuration from the environment.
//
// An optional .env file in the working directory is read first; variables
// already set in the environment take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvAddr                = "SCHEDPARSE_ADDR"
	EnvReplacementsURL     = "SCHEDPARSE_REPLACEMENTS_URL"
	EnvScheduleURLTemplate = "SCHEDPARSE_SCHEDULE_URL_TEMPLATE"
	EnvFetchTimeout        = "SCHEDPARSE_FETCH_TIMEOUT"
	EnvMaxConnections      = "SCHEDPARSE_MAX_CONNECTIONS"
	EnvMaxDocumentBytes    = "SCHEDPARSE_MAX_DOCUMENT_BYTES"
	EnvTimezone            = "SCHEDPARSE_TIMEZONE"
)

// Config is the service configuration.
type Config struct {
	// Addr is the listen address
	Addr string

	// ReplacementsURL locates the replacements sheet
	ReplacementsURL string

	// ScheduleURLTemplate locates a group's timetable; %s is the group
	ScheduleURLTemplate string

	// FetchTimeout bounds one document download
	FetchTimeout time.Duration

	// MaxConnections caps concurrently accepted connections
	MaxConnections int

	// MaxDocumentBytes caps the size of a downloaded document
	MaxDocumentBytes int64

	// Location is the time zone of response timestamps
	Location *time.Location
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		loc = time.FixedZone("MSK", 3*60*60)
	}
	return Config{
		Addr:                ":3001",
		ReplacementsURL:     "https://ttgt.org/images/pdf/zamena.pdf",
		ScheduleURLTemplate: "https://ttgt.org/images/raspisanie/ochno/%s.pdf",
		FetchTimeout:        30 * time.Second,
		MaxConnections:      64,
		MaxDocumentBytes:    20 << 20,
		Location:            loc,
	}
}

// Load reads .env if present and then the environment. It returns whether
// a .env file was loaded so the caller can report it.
func Load() (Config, bool, error) {
	loaded := godotenv.Load() == nil
	cfg, err := FromEnv()
	return cfg, loaded, err
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.Addr = getEnv(EnvAddr, cfg.Addr)
	cfg.ReplacementsURL = getEnv(EnvReplacementsURL, cfg.ReplacementsURL)
	cfg.ScheduleURLTemplate = getEnv(EnvScheduleURLTemplate, cfg.ScheduleURLTemplate)

	var err error
	if cfg.FetchTimeout, err = getEnvDuration(EnvFetchTimeout, cfg.FetchTimeout); err != nil {
		return Config{}, err
	}
	if cfg.MaxConnections, err = getEnvInt(EnvMaxConnections, cfg.MaxConnections); err != nil {
		return Config{}, err
	}
	maxBytes, err := getEnvInt(EnvMaxDocumentBytes, int(cfg.MaxDocumentBytes))
	if err != nil {
		return Config{}, err
	}
	cfg.MaxDocumentBytes = int64(maxBytes)

	if tz := os.Getenv(EnvTimezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTimezone, err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid non-negative integer %q", key, v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
