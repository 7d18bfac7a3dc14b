// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Reelback96/MoviePollGame/metrics"
	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/submission"
	"github.com/Reelback96/MoviePollGame/tournament"
)

var (
	ErrWrongPhase    = errors.New("action not allowed in current phase")
	ErrInvalidWinner = errors.New("invalid winner")
)

// Session is one user's run from first match to submitted top 5. Every
// method takes the session lock, so user actions apply one at a time.
type Session struct {
	mu sync.Mutex

	id          string
	clientID    string
	createdAt   time.Time
	submittedAt *time.Time
	phase       string

	engine     *tournament.Engine
	resolution tournament.Resolution
	list       *tournament.ResultList
}

// New starts a session over items. A nil rng uses the global source.
func New(id, clientID string, items []models.Movie, rng *rand.Rand, now time.Time) (*Session, error) {
	engine, err := tournament.NewEngine(items, rng)
	if err != nil {
		return nil, err
	}
	return NewWithEngine(id, clientID, engine, now), nil
}

// NewWithEngine starts a session over a prepared engine.
func NewWithEngine(id, clientID string, engine *tournament.Engine, now time.Time) *Session {
	return &Session{
		id:        id,
		clientID:  clientID,
		createdAt: now,
		phase:     models.PhaseVoting,
		engine:    engine,
	}
}

func (s *Session) ID() string       { return s.id }
func (s *Session) ClientID() string { return s.clientID }

func (s *Session) Phase() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) TotalMatches() int {
	return s.engine.TotalMatches()
}

// Match returns the pair currently up for a vote.
func (s *Session) Match() (models.MatchView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseVoting {
		return models.MatchView{}, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}
	return s.matchView()
}

func (s *Session) matchView() (models.MatchView, error) {
	m, err := s.engine.CurrentMatch()
	if err != nil {
		return models.MatchView{}, err
	}
	return models.MatchView{
		Champion:     m.Champion,
		Challenger:   m.Challenger,
		MatchesLeft:  s.engine.MatchesLeft(),
		TotalMatches: s.engine.TotalMatches(),
	}, nil
}

// Vote decides the current match. When it was the last one the top 5 is
// resolved and the session moves to face-off or ordering.
func (s *Session) Vote(winner string) (models.VoteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseVoting {
		return models.VoteResponse{}, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}

	var err error
	switch winner {
	case models.WinnerChampion:
		err = s.engine.DecideChampionWins()
	case models.WinnerChallenger:
		err = s.engine.DecideChallengerWins()
	default:
		return models.VoteResponse{}, fmt.Errorf("%w: %q", ErrInvalidWinner, winner)
	}
	if err != nil {
		return models.VoteResponse{}, err
	}
	metrics.VotesCast.WithLabelValues(winner).Inc()

	if s.engine.Complete() {
		if err := s.finishTournament(); err != nil {
			return models.VoteResponse{}, err
		}
	}
	return s.voteResponse(), nil
}

func (s *Session) finishTournament() error {
	out, err := s.engine.Outcome()
	if err != nil {
		return err
	}
	s.resolution = tournament.Resolve(out)
	if s.resolution.NeedsFaceOff() {
		s.phase = models.PhaseFaceOff
		return nil
	}
	s.list = tournament.NewResultList(s.resolution.Final)
	s.phase = models.PhaseOrdering
	return nil
}

func (s *Session) voteResponse() models.VoteResponse {
	resp := models.VoteResponse{Phase: s.phase}
	switch s.phase {
	case models.PhaseVoting:
		if m, err := s.matchView(); err == nil {
			resp.Match = &m
		}
	case models.PhaseFaceOff:
		resp.FaceOff = s.faceOffView()
	case models.PhaseOrdering:
		resp.Top5 = s.list.Items()
	}
	return resp
}

func (s *Session) faceOffView() *models.FaceOffView {
	f := s.resolution.FaceOff
	if f == nil || !f.Pending() {
		return nil
	}
	return &models.FaceOffView{Champion: f.Champion(), Fifth: f.Fifth()}
}

// FaceOff settles the champion-vs-5th decision. winner is "champion" or
// "fifth".
func (s *Session) FaceOff(winner string) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseFaceOff {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}

	var (
		final []models.Movie
		err   error
	)
	switch winner {
	case models.WinnerChampion:
		final, err = s.resolution.FaceOff.ChampionWins()
	case models.WinnerFifth:
		final, err = s.resolution.FaceOff.ChallengerWins()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidWinner, winner)
	}
	if err != nil {
		return nil, err
	}
	metrics.FaceOffs.WithLabelValues(winner).Inc()

	s.resolution.Final = final
	s.list = tournament.NewResultList(final)
	s.phase = models.PhaseOrdering
	return s.list.Items(), nil
}

// Move reorders the finalized list.
func (s *Session) Move(from, to int) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseOrdering {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}
	if err := s.list.MoveItem(from, to); err != nil {
		return nil, err
	}
	return s.list.Items(), nil
}

// Top5 returns the finalized list in its current order.
func (s *Session) Top5() ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.list == nil {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}
	return s.list.Items(), nil
}

// Rankings returns live standings by wins.
func (s *Session) Rankings() []models.Standing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Standings()
}

// ExportTally writes the ID,Title,Votes table once voting is over.
func (s *Session) ExportTally(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == models.PhaseVoting {
		return fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}
	return tournament.WriteTallyTable(w, s.engine.Items(), s.engine.Tally())
}

// Submit freezes the order and runs the write chain against store. The
// lock is held for the whole chain, so no reorder can slip in. On failure
// the session stays in ordering.
func (s *Session) Submit(ctx context.Context, store submission.Store, now time.Time) (submission.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseOrdering {
		return submission.Request{}, fmt.Errorf("%w: %s", ErrWrongPhase, s.phase)
	}

	req := submission.Request{
		ClientID:    s.clientID,
		Top5:        s.list.Items(),
		Tally:       tournament.TallyByTitle(s.engine.Items(), s.engine.Tally()),
		SubmittedAt: now,
	}
	if err := submission.Submit(ctx, store, req); err != nil {
		return submission.Request{}, err
	}

	s.list.Freeze()
	s.submittedAt = &now
	s.phase = models.PhaseSubmitted
	return req, nil
}

// View is a read-only snapshot for the API.
func (s *Session) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := models.SessionView{
		ID:            s.id,
		ClientID:      s.clientID,
		Phase:         s.phase,
		MatchesPlayed: s.engine.MatchesPlayed(),
		TotalMatches:  s.engine.TotalMatches(),
		FaceOff:       s.faceOffView(),
		CreatedAt:     s.createdAt,
		SubmittedAt:   s.submittedAt,
	}
	if s.phase == models.PhaseVoting {
		if m, err := s.matchView(); err == nil {
			v.Match = &m
		}
	}
	if s.list != nil {
		v.Top5 = s.list.Items()
	}
	return v
}
