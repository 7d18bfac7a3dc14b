// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/tournament"
)

var (
	ErrDuplicateSubmission = errors.New("results already submitted for this client")
	ErrMissingClientID     = errors.New("client id required")
)

// Step names, in execution order
const (
	StepCheckDuplicate = "check-duplicate"
	StepWriteTop5      = "write-top5"
	StepWriteTally     = "write-tally"
	StepLogID          = "log-id"
)

// Row is one append-only record. Values are strings, ints or timestamps
// already formatted as strings.
type Row []any

// Store is the remote append-only table the results land in.
type Store interface {
	// LoggedKeys returns every client id that has completed a submission.
	LoggedKeys(ctx context.Context) ([]string, error)
	AppendTop5(ctx context.Context, row Row) error
	AppendTally(ctx context.Context, row Row) error
	LogKey(ctx context.Context, key string) error
}

// Request is a frozen top 5 plus the full tally, ready to persist.
type Request struct {
	ClientID    string
	Top5        []models.Movie
	Tally       []tournament.TitleCount
	SubmittedAt time.Time
}

func (r Request) timestamp() string {
	return r.SubmittedAt.UTC().Format(time.RFC3339)
}

// Top5Row is [client id, title 1..5, timestamp].
func Top5Row(r Request) Row {
	row := make(Row, 0, len(r.Top5)+2)
	row = append(row, r.ClientID)
	for _, m := range r.Top5 {
		row = append(row, m.Title)
	}
	return append(row, r.timestamp())
}

// TallyRow is [client id, title, votes, title, votes, ..., timestamp] with
// titles in the order given by tournament.TallyByTitle.
func TallyRow(r Request) Row {
	row := make(Row, 0, 2*len(r.Tally)+2)
	row = append(row, r.ClientID)
	for _, tc := range r.Tally {
		row = append(row, tc.Title, tc.Votes)
	}
	return append(row, r.timestamp())
}

// IsDuplicate reports whether key is already in the store's log.
func IsDuplicate(ctx context.Context, store Store, key string) (bool, error) {
	keys, err := store.LoggedKeys(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(keys, key), nil
}

// Submit runs the write chain against store. Nothing is written when the
// client id is already logged. Writes that landed before a failing step
// stay where they are.
func Submit(ctx context.Context, store Store, req Request) error {
	if req.ClientID == "" {
		return ErrMissingClientID
	}

	return NewPipeline().
		Add(StepCheckDuplicate, func(ctx context.Context) error {
			dup, err := IsDuplicate(ctx, store, req.ClientID)
			if err != nil {
				return err
			}
			if dup {
				return ErrDuplicateSubmission
			}
			return nil
		}).
		Add(StepWriteTop5, func(ctx context.Context) error {
			return store.AppendTop5(ctx, Top5Row(req))
		}).
		Add(StepWriteTally, func(ctx context.Context) error {
			return store.AppendTally(ctx, TallyRow(req))
		}).
		Add(StepLogID, func(ctx context.Context) error {
			return store.LogKey(ctx, req.ClientID)
		}).
		Run(ctx)
}
