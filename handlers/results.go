// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/Reelback96/MoviePollGame/cliparse"
	"github.com/Reelback96/MoviePollGame/logger"
	"github.com/Reelback96/MoviePollGame/metrics"
	"github.com/Reelback96/MoviePollGame/middleware"
	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/session"
	"github.com/Reelback96/MoviePollGame/submission"
)

type ResultsHandler struct {
	sessionFinder
	stores StoreProvider
	now    func() time.Time
}

func NewResultsHandler(registry *session.Registry, stores StoreProvider, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		sessionFinder: sessionFinder{registry: registry, salt: cfg.SessionKeySalt},
		stores:        stores,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// GetTop5 handles GET /sessions/{id}/top5
func (h *ResultsHandler) GetTop5(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}

	top, err := s.Top5()
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.Top5Response{Phase: s.Phase(), Top5: top})
}

// MoveItem handles POST /sessions/{id}/top5/move
func (h *ResultsHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}

	var req models.MoveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, "Validation failed", FormatValidationError(err))
		return
	}

	top, err := s.Move(*req.From, *req.To)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.Top5Response{Phase: models.PhaseOrdering, Top5: top})
}

// Submit handles POST /sessions/{id}/submit
func (h *ResultsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}
	log := logger.FromContext(r.Context())

	store, err := h.stores.StoreFor(r)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailure).Inc()
		writeSessionError(w, r, err)
		return
	}

	req, err := s.Submit(r.Context(), store, h.now())
	switch {
	case err == nil:
		metrics.Submissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	case errors.Is(err, submission.ErrDuplicateSubmission):
		metrics.Submissions.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		log.Info("duplicate submission", "session_id", s.ID(), "client_id", s.ClientID())
		writeSessionError(w, r, err)
		return
	default:
		if !errors.Is(err, session.ErrWrongPhase) {
			metrics.Submissions.WithLabelValues(metrics.OutcomeFailure).Inc()
		}
		writeSessionError(w, r, err)
		return
	}

	log.Info("top 5 submitted", "session_id", s.ID(), "client_id", req.ClientID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		ClientID:    req.ClientID,
		Top5:        req.Top5,
		SubmittedAt: req.SubmittedAt,
		Message:     "Thanks! Your top 5 has been recorded.",
	})
}

// ExportTally handles GET /sessions/{id}/export
func (h *ResultsHandler) ExportTally(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := s.ExportTally(&buf); err != nil {
		writeSessionError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="tally.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
