// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tournament implements the king-of-the-hill ranking and the top 5
reconciliation that follows it.

# Engine

The engine shuffles the items once and walks the shuffled order, pitting
the current champion against the next challenger:

	e, err := tournament.NewEngine(movies, nil)
	m, _ := e.CurrentMatch()      // m.Champion vs m.Challenger
	e.DecideChallengerWins()      // challenger +1 and takes the hill
	e.DecideChampionWins()        // champion +1 and stays

Each decision consumes one challenger, so n items always finish after
n-1 decisions.

# Resolving the Top 5

	res := tournament.Resolve(outcome)

The provisional top 5 is every item sorted by wins, ties in ingestion
order. If the final champion missed it:

  - more wins than the 5th: the champion replaces the 5th
  - equal or fewer wins: a FaceOff between the two is returned

# Face-off

	final, err := res.FaceOff.ChampionWins()   // or ChallengerWins()

One decision only; a second call returns ErrFaceOffResolved.

# Reordering

	list := tournament.NewResultList(final)
	list.MoveItem(4, 0)
	order := list.Freeze()

# Export

WriteTallyTable writes an ID,Title,Votes CSV. TallyByTitle orders tallies
by NormalizeTitle for the submitted tally row.
*/
package tournament
