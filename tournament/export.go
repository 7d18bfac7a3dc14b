// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/Reelback96/MoviePollGame/models"
)

// TitleCount is one entry of the submitted tally row.
type TitleCount struct {
	Title string
	Votes int
}

// TallyByTitle lists every item's wins ordered by NormalizeTitle, falling
// back to the raw title and then the id when keys collide.
func TallyByTitle(items []models.Movie, tally map[string]int) []TitleCount {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.Movie) int {
		return cmp.Or(
			cmp.Compare(NormalizeTitle(a.Title), NormalizeTitle(b.Title)),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.ID, b.ID),
		)
	})

	out := make([]TitleCount, len(sorted))
	for i, m := range sorted {
		out[i] = TitleCount{Title: m.Title, Votes: tally[m.ID]}
	}
	return out
}

// WriteTallyTable writes an ID,Title,Votes table, one row per item in
// ingestion order.
func WriteTallyTable(w io.Writer, items []models.Movie, tally map[string]int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Title", "Votes"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, m := range items {
		if err := cw.Write([]string{m.ID, m.Title, strconv.Itoa(tally[m.ID])}); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", m.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
