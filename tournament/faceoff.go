// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"errors"
	"slices"

	"github.com/Reelback96/MoviePollGame/models"
)

var (
	ErrFaceOffResolved = errors.New("face-off already resolved")
	ErrFaceOffPending  = errors.New("face-off still pending")
)

// FaceOff is the single champion-vs-5th decision. It can be resolved once.
type FaceOff struct {
	champion    models.Movie
	fifth       models.Movie
	provisional []models.Movie
	tally       map[string]int
	final       []models.Movie
	resolved    bool
}

func newFaceOff(champion, fifth models.Movie, provisional []models.Movie, tally map[string]int) *FaceOff {
	return &FaceOff{
		champion:    champion,
		fifth:       fifth,
		provisional: slices.Clone(provisional),
		tally:       tally,
	}
}

func (f *FaceOff) Champion() models.Movie { return f.champion }
func (f *FaceOff) Fifth() models.Movie    { return f.fifth }
func (f *FaceOff) Pending() bool          { return !f.resolved }

// ChampionWins puts the champion in and the incumbent 5th out.
func (f *FaceOff) ChampionWins() ([]models.Movie, error) {
	if f.resolved {
		return nil, ErrFaceOffResolved
	}
	f.final = displace(f.provisional, f.fifth, f.champion, f.tally)
	f.resolved = true
	return slices.Clone(f.final), nil
}

// ChallengerWins keeps the provisional top 5 as is.
func (f *FaceOff) ChallengerWins() ([]models.Movie, error) {
	if f.resolved {
		return nil, ErrFaceOffResolved
	}
	f.final = slices.Clone(f.provisional)
	f.resolved = true
	return slices.Clone(f.final), nil
}

func (f *FaceOff) Final() ([]models.Movie, error) {
	if !f.resolved {
		return nil, ErrFaceOffPending
	}
	return slices.Clone(f.final), nil
}
