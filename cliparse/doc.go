// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads a .env file (if any) into the environment, then ParseFlags
returns a Config struct with all settings:

	_ = cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type (sqlite or postgres)
	-store         Submission store (db or sheets)
	-csv           Movie list CSV, URL or file path
	-session-salt  Session key salt

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p (default 3318)
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t (default sqlite)
	STORE             → -store (default db)
	CSV_SOURCE        → -csv
	SESSION_KEY_SALT  → -session-salt

These are environment only:

	SHEETS_SPREADSHEET_ID  target spreadsheet for the sheets store
	SHEETS_TOKEN           bearer token used when a request carries none
	SHEETS_ENDPOINT        API base URL override
	SESSION_TTL            idle session lifetime (default 2h)
	MAX_SESSIONS           live session cap (default 1024)
	LOG_LEVEL, LOG_FORMAT  logger settings (default info, text)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - CSV_SOURCE must be provided
  - SESSION_KEY_SALT must be provided
  - DATABASE_URL must be provided for the db store
  - SHEETS_SPREADSHEET_ID must be provided for the sheets store
*/
package cliparse
