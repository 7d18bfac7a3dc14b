// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the movie KOTH API.

# Handler Types

Each handler is a struct over the session registry and config:

  - SessionHandler: session creation and snapshots
  - VotingHandler: matches, votes, live rankings and the face-off
  - ResultsHandler: top 5 reordering, submission and tally export

	sessionHandler := handlers.NewSessionHandler(registry, source, cfg)

# Session Lifecycle

Sessions progress through four phases: voting → faceoff → ordering → submitted.
The face-off phase is skipped when the champion already made the top 5.

	POST /sessions                  → CreateSession (returns session_key, client_id)
	GET  /sessions/{id}/match       → GetMatch (voting only)
	POST /sessions/{id}/votes       → Vote
	POST /sessions/{id}/faceoff     → FaceOff (faceoff only)
	POST /sessions/{id}/top5/move   → MoveItem (ordering only)
	POST /sessions/{id}/submit      → Submit (ordering only)
	GET  /sessions/{id}/export      → ExportTally (CSV, after voting)

Every per-session route requires the X-Session-Key header returned at
creation.

# Submission Stores

Submit writes through a StoreProvider. FixedStore serves the SQL store;
SheetsStore builds a spreadsheet store per request from the caller's
"Authorization: Bearer" token.

# Errors

Validation failures return 400 with per-field messages. Wrong-phase actions
and duplicate submissions return 409. A failed remote write returns 502
naming the step that failed.
*/
package handlers
