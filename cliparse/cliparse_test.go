// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("SESSION_KEY_SALT", "test-salt")
	t.Setenv("CSV_SOURCE", "movies.csv")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("MAX_SESSIONS", "16")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected ttl 30m, got %v", cfg.SessionTTL)
	}
	if cfg.MaxSessions != 16 {
		t.Errorf("expected 16 sessions, got %d", cfg.MaxSessions)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json log format, got %q", cfg.LogFormat)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.Store != StoreDB {
		t.Errorf("expected db store, got %q", cfg.Store)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h ttl, got %v", cfg.SessionTTL)
	}
	if cfg.MaxSessions != 1024 {
		t.Errorf("expected 1024 sessions, got %d", cfg.MaxSessions)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info level, got %q", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:other.db", "-session-salt", "s1", "-csv", "https://example.com/list.csv"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:other.db" {
		t.Errorf("expected file:other.db, got %q", cfg.DatabaseURL)
	}
	if cfg.CSVSource != "https://example.com/list.csv" {
		t.Errorf("unexpected csv source %q", cfg.CSVSource)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing salt", map[string]string{"SESSION_KEY_SALT": ""}, nil},
		{"missing csv", map[string]string{"CSV_SOURCE": ""}, nil},
		{"missing database for db store", map[string]string{"DATABASE_URL": ""}, nil},
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"bad ttl", map[string]string{"SESSION_TTL": "soon"}, nil},
		{"bad max sessions", map[string]string{"MAX_SESSIONS": "-1"}, nil},
		{"unknown store", nil, []string{"-store", "s3"}},
		{"sheets without spreadsheet", map[string]string{"SHEETS_SPREADSHEET_ID": ""}, []string{"-store", "sheets"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_SheetsStore(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SHEETS_SPREADSHEET_ID", "sheet-123")
	t.Setenv("SHEETS_TOKEN", "tok")

	cfg, err := ParseFlags([]string{"-store", "sheets"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SheetsSpreadsheetID != "sheet-123" || cfg.SheetsToken != "tok" {
		t.Errorf("sheets settings not read: %+v", cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MOVIE_KOTH_TEST_VAR=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOVIE_KOTH_TEST_VAR", "")
	os.Unsetenv("MOVIE_KOTH_TEST_VAR")

	if err := LoadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("MOVIE_KOTH_TEST_VAR"); got != "from-file" {
		t.Errorf("expected from-file, got %q", got)
	}
}
