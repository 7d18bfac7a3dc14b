// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reelback96/MoviePollGame/models"
)

func movies(ids ...string) []models.Movie {
	out := make([]models.Movie, len(ids))
	for i, id := range ids {
		out[i] = models.Movie{ID: id, Title: "Movie " + id}
	}
	return out
}

func zeroTally(items []models.Movie) map[string]int {
	t := make(map[string]int, len(items))
	for _, m := range items {
		t[m.ID] = 0
	}
	return t
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		items   []models.Movie
		wantErr error
	}{
		{"no items", nil, ErrInsufficientItems},
		{"one item", movies("A"), ErrInsufficientItems},
		{"duplicate ids", movies("A", "B", "A"), ErrDuplicateID},
		{"two items", movies("A", "B"), nil},
		{"ten items", movies("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.items, rand.New(rand.NewPCG(1, 2)))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)

			assert.ElementsMatch(t, tt.items, e.MatchOrder(), "match order must be a permutation")
			assert.Equal(t, tt.items, e.Items(), "ingestion order is preserved")
			assert.Equal(t, len(tt.items)-1, e.TotalMatches())
			assert.Equal(t, 0, e.MatchesPlayed())
			for _, m := range tt.items {
				assert.Zero(t, e.Tally()[m.ID])
			}

			champ, err := e.Champion()
			require.NoError(t, err)
			assert.Equal(t, e.MatchOrder()[0], champ)
		})
	}
}

func TestEngineThreeItemScenario(t *testing.T) {
	items := movies("A", "B", "C")
	e := NewEngineWithOrder(items, items, zeroTally(items))

	m, err := e.CurrentMatch()
	require.NoError(t, err)
	assert.Equal(t, "A", m.Champion.ID)
	assert.Equal(t, "B", m.Challenger.ID)

	require.NoError(t, e.DecideChallengerWins())
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 0}, e.Tally())

	m, err = e.CurrentMatch()
	require.NoError(t, err)
	assert.Equal(t, "B", m.Champion.ID)
	assert.Equal(t, "C", m.Challenger.ID)

	require.NoError(t, e.DecideChallengerWins())
	assert.True(t, e.Complete())

	out, err := e.Outcome()
	require.NoError(t, err)
	assert.Equal(t, "C", out.Champion.ID)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1}, out.Tally)

	res := Resolve(out)
	assert.False(t, res.NeedsFaceOff())
	assert.Len(t, res.Final, 3)
	assert.Contains(t, res.Final, out.Champion)
}

func TestEngineChampionHoldsHill(t *testing.T) {
	items := movies("A", "B", "C", "D")
	e := NewEngineWithOrder(items, items, zeroTally(items))

	for range 3 {
		require.NoError(t, e.DecideChampionWins())
	}

	out, err := e.Outcome()
	require.NoError(t, err)
	assert.Equal(t, "A", out.Champion.ID)
	assert.Equal(t, 3, out.Tally["A"])
}

func TestEngineRejectsActionsAfterCompletion(t *testing.T) {
	items := movies("A", "B")
	e := NewEngineWithOrder(items, items, zeroTally(items))
	require.NoError(t, e.DecideChampionWins())
	require.True(t, e.Complete())

	before := e.Tally()

	_, err := e.CurrentMatch()
	assert.ErrorIs(t, err, ErrTournamentComplete)
	assert.ErrorIs(t, e.DecideChallengerWins(), ErrNoActiveChallenger)
	assert.ErrorIs(t, e.DecideChampionWins(), ErrNoActiveChallenger)
	assert.Equal(t, before, e.Tally(), "rejected decisions must not touch the tally")
}

func TestEngineZeroValue(t *testing.T) {
	var e Engine

	assert.ErrorIs(t, e.DecideChampionWins(), ErrNotInitialized)
	assert.ErrorIs(t, e.DecideChallengerWins(), ErrNotInitialized)
	_, err := e.CurrentMatch()
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = e.Outcome()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, e.Complete())
}

func TestEngineOutcomeBeforeCompletion(t *testing.T) {
	e, err := NewEngine(movies("A", "B", "C"), nil)
	require.NoError(t, err)

	_, err = e.Outcome()
	assert.ErrorIs(t, err, ErrTournamentRunning)
}

// Every run takes n-1 decisions, sees each item as challenger once and
// hands out exactly one win per decision.
func TestEngineRunProperties(t *testing.T) {
	for n := 2; n <= 30; n++ {
		for seed := uint64(0); seed < 5; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				ids := make([]string, n)
				for i := range ids {
					ids[i] = fmt.Sprint(i)
				}
				rng := rand.New(rand.NewPCG(seed, uint64(n)))
				e, err := NewEngine(movies(ids...), rng)
				require.NoError(t, err)

				order := e.MatchOrder()
				challengers := map[string]int{}
				decisions := 0
				for !e.Complete() {
					m, err := e.CurrentMatch()
					require.NoError(t, err)
					challengers[m.Challenger.ID]++

					if rng.IntN(2) == 0 {
						require.NoError(t, e.DecideChampionWins())
					} else {
						require.NoError(t, e.DecideChallengerWins())
					}
					decisions++
					assert.Equal(t, decisions, e.MatchesPlayed())
					assert.Equal(t, n-1-decisions, e.MatchesLeft())
				}

				assert.Equal(t, n-1, decisions)
				assert.Len(t, challengers, n-1)
				assert.NotContains(t, challengers, order[0].ID, "the opening champion never challenges")
				for id, c := range challengers {
					assert.Equal(t, 1, c, "item %s challenged more than once", id)
				}

				sum := 0
				for _, v := range e.Tally() {
					sum += v
				}
				assert.Equal(t, decisions, sum)
			})
		}
	}
}

func TestStandings(t *testing.T) {
	items := movies("A", "B", "C")
	e := NewEngineWithOrder(items, []models.Movie{items[2], items[0], items[1]}, zeroTally(items))

	// C beats A, B beats C
	require.NoError(t, e.DecideChampionWins())
	require.NoError(t, e.DecideChallengerWins())

	s := e.Standings()
	require.Len(t, s, 3)
	assert.Equal(t, "B", s[0].Movie.ID)
	assert.Equal(t, "C", s[1].Movie.ID)
	assert.Equal(t, "A", s[2].Movie.ID)
	assert.Equal(t, []int{1, 2, 3}, []int{s[0].Rank, s[1].Rank, s[2].Rank})
}
