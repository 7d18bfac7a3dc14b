// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Reelback96/MoviePollGame/submission"
)

// SubmissionStore keeps submitted rows in SQL tables.
type SubmissionStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ submission.Store = (*SubmissionStore)(nil)

func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db, now: time.Now}
}

func (s *SubmissionStore) LoggedKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT client_id FROM submission_log ORDER BY logged_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submission log: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan submission log: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *SubmissionStore) AppendTop5(ctx context.Context, row submission.Row) error {
	return s.appendRow(ctx, "top5_row", row)
}

func (s *SubmissionStore) AppendTally(ctx context.Context, row submission.Row) error {
	return s.appendRow(ctx, "tally_row", row)
}

func (s *SubmissionStore) LogKey(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submission_log (client_id, logged_at)
		VALUES ($1, $2)
	`, key, s.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to log client id: %w", err)
	}
	return nil
}

// appendRow stores row as a JSON array. The first cell is the client id.
func (s *SubmissionStore) appendRow(ctx context.Context, table string, row submission.Row) error {
	if len(row) == 0 {
		return fmt.Errorf("empty row for %s", table)
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}

	// table is one of two constants above, never user input
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO `+table+` (id, client_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), fmt.Sprint(row[0]), string(payload), s.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// Rows returns the stored payloads of table for one client, oldest first.
// table must be "top5_row" or "tally_row".
func (s *SubmissionStore) Rows(ctx context.Context, table, clientID string) ([]submission.Row, error) {
	if table != "top5_row" && table != "tally_row" {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM `+table+`
		WHERE client_id = $1
		ORDER BY created_at
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var out []submission.Row
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		var row submission.Row
		if err := json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", table, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
