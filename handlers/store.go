// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/Reelback96/MoviePollGame/sheets"
	"github.com/Reelback96/MoviePollGame/submission"
)

// StoreProvider hands out the submission store for one request.
type StoreProvider interface {
	StoreFor(r *http.Request) (submission.Store, error)
}

// FixedStore serves every request from the same store.
type FixedStore struct {
	Store submission.Store
}

func (f FixedStore) StoreFor(*http.Request) (submission.Store, error) {
	return f.Store, nil
}

// SheetsStore builds a spreadsheet store per request from the caller's
// bearer token, falling back to DefaultToken.
type SheetsStore struct {
	Config       sheets.Config
	DefaultToken string
}

func (s SheetsStore) StoreFor(r *http.Request) (submission.Store, error) {
	token := BearerToken(r)
	if token == "" {
		token = s.DefaultToken
	}
	return sheets.NewStore(r.Context(), s.Config, token)
}

// BearerToken returns the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
