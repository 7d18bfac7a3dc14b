// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the movie KOTH API.

# Route Registration

NewRouter returns a chi router with all endpoints:

	h := router.NewRouter(registry, source, stores, cfg)

Every request passes through panic recovery, CORS, request ids and the
Prometheus middleware. Session routes also get request logging.

# Endpoints

Service:

	GET /health
	GET /metrics

Sessions (all but creation require X-Session-Key):

	POST /sessions                 - Start a session
	GET  /sessions/{id}            - Session snapshot
	GET  /sessions/{id}/match      - Current champion and challenger
	POST /sessions/{id}/votes      - Decide the current match
	GET  /sessions/{id}/rankings   - Live standings
	POST /sessions/{id}/faceoff    - Settle champion vs 5th
	GET  /sessions/{id}/top5       - Finalized list
	POST /sessions/{id}/top5/move  - Reorder the list
	POST /sessions/{id}/submit     - Record the top 5
	GET  /sessions/{id}/export     - Tally as CSV
*/
package router
