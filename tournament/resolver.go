// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"slices"

	"github.com/Reelback96/MoviePollGame/models"
)

// Resolution is the result of reconciling the final champion with the
// provisional top 5. Exactly one of Final and FaceOff is set.
type Resolution struct {
	Provisional []models.Movie
	Final       []models.Movie
	FaceOff     *FaceOff
}

// NeedsFaceOff reports whether a human tie-break is pending.
func (r Resolution) NeedsFaceOff() bool {
	return r.FaceOff != nil
}

// Resolve computes the top 5 from a finished tournament.
//
// The champion's wins only count matches played after it took the hill, so
// when it missed the provisional cut it gets in automatically only with
// strictly more wins than the incumbent 5th. Lower or equal goes to a face-off.
func Resolve(out Outcome) Resolution {
	ranked := rankByTally(out.Items, out.Tally)
	provisional := ranked[:min(models.TopN, len(ranked))]

	if slices.ContainsFunc(provisional, func(m models.Movie) bool { return m.ID == out.Champion.ID }) {
		return Resolution{Provisional: provisional, Final: slices.Clone(provisional)}
	}

	fifth := provisional[len(provisional)-1]
	if out.Tally[out.Champion.ID] > out.Tally[fifth.ID] {
		return Resolution{
			Provisional: provisional,
			Final:       displace(provisional, fifth, out.Champion, out.Tally),
		}
	}

	return Resolution{
		Provisional: provisional,
		FaceOff:     newFaceOff(out.Champion, fifth, provisional, out.Tally),
	}
}

// rankByTally sorts by wins descending. The sort is stable so equal tallies
// keep the order of the input.
func rankByTally(movies []models.Movie, tally map[string]int) []models.Movie {
	ranked := slices.Clone(movies)
	slices.SortStableFunc(ranked, func(a, b models.Movie) int {
		return tally[b.ID] - tally[a.ID]
	})
	return ranked
}

// displace swaps out for in and re-ranks. in lands after anything it ties with.
func displace(list []models.Movie, out, in models.Movie, tally map[string]int) []models.Movie {
	next := slices.DeleteFunc(slices.Clone(list), func(m models.Movie) bool { return m.ID == out.ID })
	next = append(next, in)
	return rankByTally(next, tally)
}
