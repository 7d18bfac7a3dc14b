// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Reelback96/MoviePollGame/cliparse"
	"github.com/Reelback96/MoviePollGame/logger"
	"github.com/Reelback96/MoviePollGame/middleware"
	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/session"
)

type VotingHandler struct {
	sessionFinder
}

func NewVotingHandler(registry *session.Registry, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{sessionFinder{registry: registry, salt: cfg.SessionKeySalt}}
}

// GetMatch handles GET /sessions/{id}/match
func (h *VotingHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}

	m, err := s.Match()
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, m)
}

// Vote handles POST /sessions/{id}/votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, "Validation failed", FormatValidationError(err))
		return
	}

	resp, err := s.Vote(req.Winner)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}

	if resp.Phase != models.PhaseVoting {
		logger.FromContext(r.Context()).Info("tournament finished", "session_id", s.ID(), "phase", resp.Phase)
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetRankings handles GET /sessions/{id}/rankings
func (h *VotingHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.RankingsResponse{Rankings: s.Rankings()})
}

// FaceOff handles POST /sessions/{id}/faceoff
func (h *VotingHandler) FaceOff(w http.ResponseWriter, r *http.Request) {
	s, ok := h.find(w, r)
	if !ok {
		return
	}

	var req models.FaceOffRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, "Validation failed", FormatValidationError(err))
		return
	}

	final, err := s.FaceOff(req.Winner)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("face-off decided", "session_id", s.ID(), "winner", req.Winner)
	middleware.JSONResponse(w, http.StatusOK, models.Top5Response{Phase: models.PhaseOrdering, Top5: final})
}
