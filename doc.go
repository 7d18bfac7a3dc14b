// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the movie KOTH API server.

Movie KOTH ranks a list of movies with a single-elimination "king of the
hill" run: the reigning champion meets each remaining movie once, the
winner stays on the hill, and the wins tally decides the top 5. A champion
that missed the cut meets the 5th place in a face-off. The user can then
reorder the five and submit them once per client id.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	CSV_SOURCE=https://.../movies.csv SESSION_KEY_SALT=... DATABASE_URL=file:koth.db go run .

Or with flags:

	go run . -p 3318 -d file:koth.db -csv movies.csv -session-salt dev

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - CSV_SOURCE (-csv): movie list, http(s) URL or file path
  - SESSION_KEY_SALT (-session-salt): secret for session key HMAC
  - DATABASE_URL (-d): database connection string, for the db store
  - SHEETS_SPREADSHEET_ID: target spreadsheet, for the sheets store

Optional settings:

  - PORT (-p): server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STORE (-store): db or sheets (default: db)
  - SHEETS_TOKEN, SHEETS_ENDPOINT: sheets store overrides
  - SESSION_TTL, MAX_SESSIONS: session registry limits
  - LOG_LEVEL, LOG_FORMAT: logging

# Graceful Shutdown

SIGINT and SIGTERM drain in-flight requests for up to 10 seconds before
the server stops.
*/
package main
