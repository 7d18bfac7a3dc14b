// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Reelback96/MoviePollGame/auth"
	"github.com/Reelback96/MoviePollGame/cliparse"
	"github.com/Reelback96/MoviePollGame/ingest"
	"github.com/Reelback96/MoviePollGame/logger"
	"github.com/Reelback96/MoviePollGame/metrics"
	"github.com/Reelback96/MoviePollGame/middleware"
	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/session"
	"github.com/Reelback96/MoviePollGame/tournament"
)

// HeaderSessionKey authenticates every per-session call.
const HeaderSessionKey = "X-Session-Key"

// sessionFinder resolves {id} plus X-Session-Key to a live session.
type sessionFinder struct {
	registry *session.Registry
	salt     string
}

func (f sessionFinder) find(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}

	if err := auth.ValidateSessionKey(id, r.Header.Get(HeaderSessionKey), f.salt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session key")
		return nil, false
	}

	s, err := f.registry.Get(id)
	if err != nil {
		writeSessionError(w, r, err)
		return nil, false
	}
	return s, true
}

type SessionHandler struct {
	sessionFinder
	source ingest.Source
	cfg    cliparse.Config
}

func NewSessionHandler(registry *session.Registry, source ingest.Source, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{
		sessionFinder: sessionFinder{registry: registry, salt: cfg.SessionKeySalt},
		source:        source,
		cfg:           cfg,
	}
}

// CreateSession handles POST /sessions. The body is optional; a client
// that already holds a client_id sends it back so duplicate submissions
// are caught across sessions.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, "Validation failed", FormatValidationError(err))
		return
	}

	clientID := req.ClientID
	if clientID == "" {
		clientID = auth.GenerateClientID()
	}

	items, err := h.source.Load(r.Context())
	if err != nil {
		metrics.IngestFailures.Inc()
		log.Error("failed to load movie list", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to load movie list")
		return
	}

	s, err := h.registry.Create(items, clientID)
	if err != nil {
		if errors.Is(err, tournament.ErrInsufficientItems) || errors.Is(err, tournament.ErrDuplicateID) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	log.Info("session created",
		"session_id", s.ID(),
		"items", len(items),
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionKeySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:    s.ID(),
		SessionKey:   auth.GenerateSessionKey(s.ID(), h.cfg.SessionKeySalt),
		ClientID:     clientID,
		TotalMatches: s.TotalMatches(),
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.View())
}
