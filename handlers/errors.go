// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/Reelback96/MoviePollGame/logger"
	"github.com/Reelback96/MoviePollGame/middleware"
	"github.com/Reelback96/MoviePollGame/session"
	"github.com/Reelback96/MoviePollGame/sheets"
	"github.com/Reelback96/MoviePollGame/submission"
	"github.com/Reelback96/MoviePollGame/tournament"
)

// writeSessionError maps session and tournament errors to a status.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, session.ErrInvalidWinner),
		errors.Is(err, tournament.ErrIndexOutOfRange):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrWrongPhase),
		errors.Is(err, tournament.ErrNoActiveChallenger),
		errors.Is(err, tournament.ErrTournamentComplete),
		errors.Is(err, tournament.ErrFaceOffResolved),
		errors.Is(err, tournament.ErrListFrozen):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, submission.ErrDuplicateSubmission):
		middleware.ErrorResponse(w, http.StatusConflict, "A top 5 was already submitted for this client")
	case errors.Is(err, sheets.ErrMissingToken):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Bearer token required")
	default:
		var stepErr *submission.StepError
		if errors.As(err, &stepErr) {
			logger.FromContext(r.Context()).Error("submission failed", "step", stepErr.Step, "error", stepErr.Err)
			middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to record submission at step "+stepErr.Step)
			return
		}
		logger.FromContext(r.Context()).Error("unexpected error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
