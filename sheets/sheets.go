// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Reelback96/MoviePollGame/submission"
)

var ErrMissingToken = errors.New("sheets bearer token required")

// Default ranges, matching the sheet layout results were always written to
const (
	DefaultTop5Range  = "Top5Sheet!A2"
	DefaultTallyRange = "FullTallySheet!A2"
	DefaultLogRange   = "SubmissionLog!A:A"
)

type Config struct {
	SpreadsheetID string
	Top5Range     string
	TallyRange    string
	LogRange      string
	Endpoint      string // overrides https://sheets.googleapis.com/ when set
}

func (c Config) withDefaults() Config {
	if c.Top5Range == "" {
		c.Top5Range = DefaultTop5Range
	}
	if c.TallyRange == "" {
		c.TallyRange = DefaultTallyRange
	}
	if c.LogRange == "" {
		c.LogRange = DefaultLogRange
	}
	return c
}

// Store appends result rows to a Google spreadsheet.
type Store struct {
	svc *sheetsapi.Service
	cfg Config
}

var _ submission.Store = (*Store)(nil)

// NewStore builds a store that authenticates every call with token. The
// token is obtained elsewhere; the store never refreshes it.
func NewStore(ctx context.Context, cfg Config, token string) (*Store, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet id required")
	}
	cfg = cfg.withDefaults()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(ctx, ts))}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Store{svc: svc, cfg: cfg}, nil
}

func (s *Store) append(ctx context.Context, rng string, row []any) error {
	_, err := s.svc.Spreadsheets.Values.Append(s.cfg.SpreadsheetID, rng, &sheetsapi.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]any{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", rng, err)
	}
	return nil
}

func (s *Store) AppendTop5(ctx context.Context, row submission.Row) error {
	return s.append(ctx, s.cfg.Top5Range, row)
}

func (s *Store) AppendTally(ctx context.Context, row submission.Row) error {
	return s.append(ctx, s.cfg.TallyRange, row)
}

func (s *Store) LogKey(ctx context.Context, key string) error {
	return s.append(ctx, s.cfg.LogRange, []any{key})
}

// LoggedKeys reads the first column of the log range.
func (s *Store) LoggedKeys(ctx context.Context) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.cfg.SpreadsheetID, s.cfg.LogRange).
		MajorDimension("ROWS").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.cfg.LogRange, err)
	}

	keys := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if key := fmt.Sprint(row[0]); key != "" {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
