// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Session phase constants
const (
	PhaseVoting    = "voting"
	PhaseFaceOff   = "faceoff"
	PhaseOrdering  = "ordering"
	PhaseSubmitted = "submitted"
)

// Vote winner constants
const (
	WinnerChampion   = "champion"
	WinnerChallenger = "challenger"
	WinnerFifth      = "fifth"
)

// TopN is the size of the finalized list.
const TopN = 5

// Domain types

// Movie is one candidate item. Only ID and Title matter to the ranking;
// everything else is carried through for display.
type Movie struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Year           string            `json:"year,omitempty"`
	Director       string            `json:"director,omitempty"`
	Genres         string            `json:"genres,omitempty"`
	Trailer        string            `json:"trailer,omitempty"`
	RottenTomatoes string            `json:"rotten_tomatoes,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
}

type Standing struct {
	Movie Movie `json:"movie"`
	Votes int   `json:"votes"`
	Rank  int   `json:"rank"` // 1-indexed
}

type MatchView struct {
	Champion     Movie `json:"champion"`
	Challenger   Movie `json:"challenger"`
	MatchesLeft  int   `json:"matches_left"`
	TotalMatches int   `json:"total_matches"`
}

type FaceOffView struct {
	Champion Movie `json:"champion"`
	Fifth    Movie `json:"fifth"`
}

type SessionView struct {
	ID            string       `json:"id"`
	ClientID      string       `json:"client_id"`
	Phase         string       `json:"phase"`
	Match         *MatchView   `json:"match,omitempty"`
	MatchesPlayed int          `json:"matches_played"`
	TotalMatches  int          `json:"total_matches"`
	FaceOff       *FaceOffView `json:"face_off,omitempty"`
	Top5          []Movie      `json:"top5,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	SubmittedAt   *time.Time   `json:"submitted_at,omitempty"`
}

// Request types

type CreateSessionRequest struct {
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
}

type VoteRequest struct {
	Winner string `json:"winner" validate:"required,oneof=champion challenger"`
}

type FaceOffRequest struct {
	Winner string `json:"winner" validate:"required,oneof=champion fifth"`
}

type MoveRequest struct {
	From *int `json:"from" validate:"required,min=0"`
	To   *int `json:"to" validate:"required"`
}

// Response types

type CreateSessionResponse struct {
	SessionID    string `json:"session_id"`
	SessionKey   string `json:"session_key"`
	ClientID     string `json:"client_id"`
	TotalMatches int    `json:"total_matches"`
}

type VoteResponse struct {
	Phase   string       `json:"phase"`
	Match   *MatchView   `json:"match,omitempty"`
	FaceOff *FaceOffView `json:"face_off,omitempty"`
	Top5    []Movie      `json:"top5,omitempty"`
}

type RankingsResponse struct {
	Rankings []Standing `json:"rankings"`
}

type Top5Response struct {
	Phase string  `json:"phase"`
	Top5  []Movie `json:"top5"`
}

type SubmitResponse struct {
	ClientID    string    `json:"client_id"`
	Top5        []Movie   `json:"top5"`
	SubmittedAt time.Time `json:"submitted_at"`
	Message     string    `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
