// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreDB     = "db"
	StoreSheets = "sheets"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Store        string

	SessionKeySalt string
	CSVSource      string

	SheetsSpreadsheetID string
	SheetsToken         string
	SheetsEndpoint      string

	SessionTTL  time.Duration
	MaxSessions int

	LogLevel  string
	LogFormat string
}

// LoadEnv reads .env style files into the environment. Variables that are
// already set win. A missing file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("movie-koth", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Store, "store", "", "Submission store (db or sheets)")
	fs.StringVar(&cfg.CSVSource, "csv", "", "Movie list CSV (URL or path)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKeySalt, "session-salt", "", "Session key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.Store == "" {
		cfg.Store = envOr("STORE", StoreDB)
	}
	if cfg.Store != StoreDB && cfg.Store != StoreSheets {
		return Config{}, fmt.Errorf("unknown store %q (use db or sheets)", cfg.Store)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.Store == StoreDB && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", "sqlite")
	}

	if cfg.CSVSource == "" {
		cfg.CSVSource = os.Getenv("CSV_SOURCE")
	}
	if cfg.CSVSource == "" {
		return Config{}, errors.New("CSV_SOURCE required")
	}

	// Secrets - MUST be provided
	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}
	if cfg.SessionKeySalt == "" {
		return Config{}, errors.New("SESSION_KEY_SALT required")
	}

	cfg.SheetsSpreadsheetID = os.Getenv("SHEETS_SPREADSHEET_ID")
	cfg.SheetsToken = os.Getenv("SHEETS_TOKEN")
	cfg.SheetsEndpoint = os.Getenv("SHEETS_ENDPOINT")
	if cfg.Store == StoreSheets && cfg.SheetsSpreadsheetID == "" {
		return Config{}, errors.New("SHEETS_SPREADSHEET_ID required for the sheets store")
	}

	cfg.SessionTTL = 2 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	cfg.MaxSessions = 1024
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, errors.New("invalid MAX_SESSIONS env variable")
		}
		cfg.MaxSessions = n
	}

	cfg.LogLevel = envOr("LOG_LEVEL", "info")
	cfg.LogFormat = envOr("LOG_FORMAT", "text")

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
