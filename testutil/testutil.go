// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Reelback96/MoviePollGame/auth"
	"github.com/Reelback96/MoviePollGame/cliparse"
	"github.com/Reelback96/MoviePollGame/db"
	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/session"
	"github.com/Reelback96/MoviePollGame/tournament"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    ":memory:",
		DatabaseType:   db.TypeSQLite,
		Store:          cliparse.StoreDB,
		SessionKeySalt: "test-session-salt",
		CSVSource:      "testdata/movies.csv",
		SessionTTL:     time.Hour,
		MaxSessions:    64,
	}
}

// Movies builds items titled "Movie <id>"
func Movies(ids ...string) []models.Movie {
	out := make([]models.Movie, len(ids))
	for i, id := range ids {
		out[i] = models.Movie{ID: id, Title: "Movie " + id}
	}
	return out
}

// AddTestSession registers a session that plays ids in the given order and
// returns it with its session key
func AddTestSession(t *testing.T, reg *session.Registry, cfg cliparse.Config, clientID string, ids ...string) (*session.Session, string) {
	t.Helper()

	items := Movies(ids...)
	tally := make(map[string]int, len(items))
	for _, m := range items {
		tally[m.ID] = 0
	}
	engine := tournament.NewEngineWithOrder(items, items, tally)

	s := session.NewWithEngine(auth.GenerateSessionID(), clientID, engine, time.Now().UTC())
	reg.Add(s)
	return s, auth.GenerateSessionKey(s.ID(), cfg.SessionKeySalt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithURLParam attaches a chi route parameter, for calling handlers
// without a router
func WithURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
