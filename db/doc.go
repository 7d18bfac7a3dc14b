// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the SQL
submission store.

# Connecting

	conn, err := db.Open(db.TypeSQLite, "movies.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

Open pings the database and creates the schema. CreateSchema is safe to
call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - top5_row: one row per submitted top 5, payload is a JSON array
  - tally_row: one row per submitted tally, payload is a JSON array
  - submission_log: client ids that finished a submission (primary key)

# Submission Store

SubmissionStore implements submission.Store, so the same write chain runs
against SQL as against Google Sheets:

	store := db.NewSubmissionStore(conn)
	err := submission.Submit(ctx, store, req)
*/
package db
