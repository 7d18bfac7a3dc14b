// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/Reelback96/MoviePollGame/models"
)

var (
	ErrMissingTitle  = errors.New("row has no title")
	ErrMissingHeader = errors.New("csv has no Title column")
)

// Source yields the candidate items for a new session.
type Source interface {
	Load(ctx context.Context) ([]models.Movie, error)
}

// CSVSource reads a header-mapped CSV from an http(s) URL or a file path.
type CSVSource struct {
	Location string
	Client   *http.Client
}

func NewCSVSource(location string) *CSVSource {
	return &CSVSource{Location: location, Client: http.DefaultClient}
}

func (s *CSVSource) Load(ctx context.Context) ([]models.Movie, error) {
	rc, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	movies, err := ParseCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Location, err)
	}
	return movies, nil
}

func (s *CSVSource) open(ctx context.Context) (io.ReadCloser, error) {
	if !strings.HasPrefix(s.Location, "http://") && !strings.HasPrefix(s.Location, "https://") {
		f, err := os.Open(s.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to open csv: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build csv request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch csv: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch csv: HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// ParseCSV maps each row onto a Movie by header name. Rows without an ID
// get their zero-based row index as ID. Blank rows are skipped but still
// count toward the index.
func ParseCSV(r io.Reader) ([]models.Movie, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	if !containsFold(header, "Title") {
		return nil, ErrMissingHeader
	}

	var movies []models.Movie
	for idx := 0; ; idx++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", idx, err)
		}
		if blank(record) {
			continue
		}

		m := toMovie(header, record)
		if m.Title == "" {
			return nil, fmt.Errorf("row %d: %w", idx, ErrMissingTitle)
		}
		if m.ID == "" {
			m.ID = strconv.Itoa(idx)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func toMovie(header, record []string) models.Movie {
	var m models.Movie
	for i, col := range header {
		if i >= len(record) {
			break
		}
		v := strings.TrimSpace(record[i])
		switch strings.ToLower(col) {
		case "id":
			m.ID = v
		case "title":
			m.Title = v
		case "year":
			m.Year = v
		case "director":
			m.Director = v
		case "genres":
			m.Genres = v
		case "trailer":
			m.Trailer = v
		case "rotten tomatoes":
			m.RottenTomatoes = v
		default:
			if col == "" || v == "" {
				continue
			}
			if m.Extra == nil {
				m.Extra = make(map[string]string)
			}
			m.Extra[col] = v
		}
	}
	return m
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// StaticSource returns a fixed list. Used for tests and local runs.
type StaticSource []models.Movie

func (s StaticSource) Load(ctx context.Context) ([]models.Movie, error) {
	out := make([]models.Movie, len(s))
	copy(out, s)
	return out, nil
}
