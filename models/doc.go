// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Movie: one candidate; ID and Title drive ranking, the rest is display data
  - Standing: a movie with its wins and 1-indexed rank
  - MatchView, FaceOffView, SessionView: read-only snapshots

# Request Types

Request types carry go-playground/validator tags:

  - CreateSessionRequest: optional client_id (UUID)
  - VoteRequest: winner, "champion" or "challenger"
  - FaceOffRequest: winner, "champion" or "fifth"
  - MoveRequest: from and to indexes; pointers so 0 is distinguishable from missing

# Error Response

All errors use the same JSON shape:

	{"error": "Bad Request", "message": "Validation failed", "fields": {"winner": "This field is required"}}
*/
package models
