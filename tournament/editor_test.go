// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		want    []string
		wantErr error
	}{
		{"move down", 0, 2, []string{"B", "C", "A", "D", "E"}, nil},
		{"move up", 4, 1, []string{"A", "E", "B", "C", "D"}, nil},
		{"same index", 2, 2, []string{"A", "B", "C", "D", "E"}, nil},
		{"to past end is clamped", 1, 99, []string{"A", "C", "D", "E", "B"}, nil},
		{"negative to is clamped", 3, -4, []string{"D", "A", "B", "C", "E"}, nil},
		{"from out of range", 5, 0, []string{"A", "B", "C", "D", "E"}, ErrIndexOutOfRange},
		{"negative from", -1, 0, []string{"A", "B", "C", "D", "E"}, ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewResultList(movies("A", "B", "C", "D", "E"))
			err := l.MoveItem(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ids(l.Items()))
		})
	}
}

func TestMoveItemIsPermutation(t *testing.T) {
	start := movies("A", "B", "C", "D", "E")
	l := NewResultList(start)
	rng := rand.New(rand.NewPCG(42, 42))

	for range 500 {
		_ = l.MoveItem(rng.IntN(7)-1, rng.IntN(9)-2)
		assert.ElementsMatch(t, start, l.Items())
		assert.Equal(t, 5, l.Len())
	}
}

func TestResultListFreeze(t *testing.T) {
	l := NewResultList(movies("A", "B", "C"))
	require.NoError(t, l.MoveItem(2, 0))

	frozen := l.Freeze()
	assert.Equal(t, []string{"C", "A", "B"}, ids(frozen))
	assert.True(t, l.Frozen())

	assert.ErrorIs(t, l.MoveItem(0, 1), ErrListFrozen)
	assert.Equal(t, frozen, l.Items())
}

func TestResultListCopiesInput(t *testing.T) {
	in := movies("A", "B")
	l := NewResultList(in)
	require.NoError(t, l.MoveItem(0, 1))
	assert.Equal(t, []string{"A", "B"}, ids(in))
}
