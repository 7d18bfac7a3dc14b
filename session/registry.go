// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Reelback96/MoviePollGame/auth"
	"github.com/Reelback96/MoviePollGame/metrics"
	"github.com/Reelback96/MoviePollGame/models"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry holds live sessions in memory. The oldest session is dropped
// once size is reached and idle sessions expire after ttl.
type Registry struct {
	cache *expirable.LRU[string, *Session]
	now   func() time.Time
}

func NewRegistry(size int, ttl time.Duration) *Registry {
	return &Registry{
		cache: expirable.NewLRU[string, *Session](size, func(string, *Session) {
			metrics.SessionsActive.Dec()
		}, ttl),
		now: time.Now,
	}
}

// Create starts a new session over items and stores it.
func (r *Registry) Create(items []models.Movie, clientID string) (*Session, error) {
	s, err := New(auth.GenerateSessionID(), clientID, items, nil, r.now())
	if err != nil {
		return nil, err
	}
	r.Add(s)
	metrics.SessionsCreated.Inc()
	return s, nil
}

func (r *Registry) Add(s *Session) {
	r.cache.Add(s.ID(), s)
	metrics.SessionsActive.Inc()
}

func (r *Registry) Get(id string) (*Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Remove(id string) bool {
	return r.cache.Remove(id)
}

func (r *Registry) Len() int {
	return r.cache.Len()
}
