// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"

	"github.com/Reelback96/MoviePollGame/models"
)

var (
	ErrInsufficientItems  = errors.New("insufficient items")
	ErrDuplicateID        = errors.New("duplicate item id")
	ErrNotInitialized     = errors.New("tournament not initialized")
	ErrNoActiveChallenger = errors.New("no active challenger")
	ErrTournamentComplete = errors.New("tournament complete")
	ErrTournamentRunning  = errors.New("tournament still running")
)

// Match is the pair currently on the hill.
type Match struct {
	Champion   models.Movie
	Challenger models.Movie
}

// Outcome is what the engine hands to the resolver once every challenger
// has been seen.
type Outcome struct {
	Champion models.Movie
	Tally    map[string]int
	Items    []models.Movie // ingestion order
}

// Engine runs a king-of-the-hill pass over a fixed random match order.
// The champion keeps the hill until a challenger beats it, so a session
// always takes exactly len(items)-1 decisions.
type Engine struct {
	items      []models.Movie
	order      []models.Movie
	tally      map[string]int
	champion   int // index into order
	challenger int // index into order of the next unconsidered item
}

// NewEngine shuffles items into a match order and seats the first one as
// champion. A nil rng uses the global source.
func NewEngine(items []models.Movie, rng *rand.Rand) (*Engine, error) {
	if len(items) < 2 {
		return nil, fmt.Errorf("%w: got %d, need at least 2", ErrInsufficientItems, len(items))
	}

	tally := make(map[string]int, len(items))
	for _, m := range items {
		if _, seen := tally[m.ID]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, m.ID)
		}
		tally[m.ID] = 0
	}

	order := make([]models.Movie, len(items))
	copy(order, items)
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if rng != nil {
		rng.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}

	return NewEngineWithOrder(items, order, tally), nil
}

// NewEngineWithOrder builds an engine over an already fixed match order.
// order must be a permutation of items; tally must hold a zero entry per item.
func NewEngineWithOrder(items, order []models.Movie, tally map[string]int) *Engine {
	ingested := make([]models.Movie, len(items))
	copy(ingested, items)
	return &Engine{
		items:      ingested,
		order:      order,
		tally:      tally,
		champion:   0,
		challenger: 1,
	}
}

func (e *Engine) initialized() bool {
	return e != nil && len(e.order) >= 2
}

// CurrentMatch returns the champion and the next challenger.
func (e *Engine) CurrentMatch() (Match, error) {
	if !e.initialized() {
		return Match{}, ErrNotInitialized
	}
	if e.Complete() {
		return Match{}, ErrTournamentComplete
	}
	return Match{
		Champion:   e.order[e.champion],
		Challenger: e.order[e.challenger],
	}, nil
}

// DecideChampionWins credits the champion and brings on the next challenger.
func (e *Engine) DecideChampionWins() error {
	if !e.initialized() {
		return ErrNotInitialized
	}
	if e.Complete() {
		return ErrNoActiveChallenger
	}
	e.tally[e.order[e.champion].ID]++
	e.challenger++
	return nil
}

// DecideChallengerWins credits the challenger and crowns it.
func (e *Engine) DecideChallengerWins() error {
	if !e.initialized() {
		return ErrNotInitialized
	}
	if e.Complete() {
		return ErrNoActiveChallenger
	}
	e.tally[e.order[e.challenger].ID]++
	e.champion = e.challenger
	e.challenger++
	return nil
}

// Complete reports whether every challenger has been considered.
func (e *Engine) Complete() bool {
	return e.initialized() && e.challenger >= len(e.order)
}

// Outcome returns the final champion and tally. It fails until Complete.
func (e *Engine) Outcome() (Outcome, error) {
	if !e.initialized() {
		return Outcome{}, ErrNotInitialized
	}
	if !e.Complete() {
		return Outcome{}, ErrTournamentRunning
	}
	return Outcome{
		Champion: e.order[e.champion],
		Tally:    e.Tally(),
		Items:    e.Items(),
	}, nil
}

// Champion returns the item currently holding the hill.
func (e *Engine) Champion() (models.Movie, error) {
	if !e.initialized() {
		return models.Movie{}, ErrNotInitialized
	}
	return e.order[e.champion], nil
}

func (e *Engine) Tally() map[string]int {
	return maps.Clone(e.tally)
}

func (e *Engine) Items() []models.Movie {
	out := make([]models.Movie, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine) MatchOrder() []models.Movie {
	out := make([]models.Movie, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Engine) TotalMatches() int {
	if !e.initialized() {
		return 0
	}
	return len(e.order) - 1
}

func (e *Engine) MatchesPlayed() int {
	if !e.initialized() {
		return 0
	}
	return e.challenger - 1
}

func (e *Engine) MatchesLeft() int {
	if !e.initialized() {
		return 0
	}
	return len(e.order) - e.challenger
}

// Standings ranks every item by wins so far. Ties keep ingestion order.
func (e *Engine) Standings() []models.Standing {
	ranked := rankByTally(e.items, e.tally)
	out := make([]models.Standing, len(ranked))
	for i, m := range ranked {
		out[i] = models.Standing{Movie: m, Votes: e.tally[m.ID], Rank: i + 1}
	}
	return out
}
