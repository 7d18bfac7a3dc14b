// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tournament

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Reelback96/MoviePollGame/models"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrListFrozen      = errors.New("list is frozen")
)

// ResultList is the finalized top 5 while the user reorders it.
type ResultList struct {
	items  []models.Movie
	frozen bool
}

func NewResultList(final []models.Movie) *ResultList {
	return &ResultList{items: slices.Clone(final)}
}

// MoveItem takes the item at from and reinserts it at to. to is clamped to
// the list bounds; from is not.
func (l *ResultList) MoveItem(from, to int) error {
	if l.frozen {
		return ErrListFrozen
	}
	if from < 0 || from >= len(l.items) {
		return fmt.Errorf("%w: from=%d len=%d", ErrIndexOutOfRange, from, len(l.items))
	}
	to = max(0, min(to, len(l.items)-1))
	if from == to {
		return nil
	}

	item := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, item)
	return nil
}

// Freeze fixes the current order and returns it.
func (l *ResultList) Freeze() []models.Movie {
	l.frozen = true
	return slices.Clone(l.items)
}

func (l *ResultList) Frozen() bool { return l.frozen }

func (l *ResultList) Items() []models.Movie {
	return slices.Clone(l.items)
}

func (l *ResultList) Len() int { return len(l.items) }
