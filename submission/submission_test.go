// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reelback96/MoviePollGame/models"
	"github.com/Reelback96/MoviePollGame/tournament"
)

// fakeStore records calls and fails the operation named in failOn.
type fakeStore struct {
	keys   []string
	top5   []Row
	tally  []Row
	calls  []string
	failOn string
}

var errRemote = errors.New("remote said no")

func (f *fakeStore) fail(op string) error {
	f.calls = append(f.calls, op)
	if f.failOn == op {
		return errRemote
	}
	return nil
}

func (f *fakeStore) LoggedKeys(ctx context.Context) ([]string, error) {
	if err := f.fail("keys"); err != nil {
		return nil, err
	}
	return f.keys, nil
}

func (f *fakeStore) AppendTop5(ctx context.Context, row Row) error {
	if err := f.fail("top5"); err != nil {
		return err
	}
	f.top5 = append(f.top5, row)
	return nil
}

func (f *fakeStore) AppendTally(ctx context.Context, row Row) error {
	if err := f.fail("tally"); err != nil {
		return err
	}
	f.tally = append(f.tally, row)
	return nil
}

func (f *fakeStore) LogKey(ctx context.Context, key string) error {
	if err := f.fail("log"); err != nil {
		return err
	}
	f.keys = append(f.keys, key)
	return nil
}

func testRequest() Request {
	return Request{
		ClientID: "client-1",
		Top5: []models.Movie{
			{ID: "1", Title: "Heat"}, {ID: "2", Title: "Alien"}, {ID: "3", Title: "Brazil"},
			{ID: "4", Title: "Ran"}, {ID: "5", Title: "Up"},
		},
		Tally: []tournament.TitleCount{
			{Title: "Alien", Votes: 2}, {Title: "Brazil", Votes: 0}, {Title: "Heat", Votes: 3},
		},
		SubmittedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)),
	}
}

func TestRows(t *testing.T) {
	req := testRequest()

	assert.Equal(t,
		Row{"client-1", "Heat", "Alien", "Brazil", "Ran", "Up", "2025-03-01T11:00:00Z"},
		Top5Row(req))
	assert.Equal(t,
		Row{"client-1", "Alien", 2, "Brazil", 0, "Heat", 3, "2025-03-01T11:00:00Z"},
		TallyRow(req))
}

func TestSubmit(t *testing.T) {
	store := &fakeStore{}
	require.NoError(t, Submit(context.Background(), store, testRequest()))

	assert.Equal(t, []string{"keys", "top5", "tally", "log"}, store.calls)
	assert.Len(t, store.top5, 1)
	assert.Len(t, store.tally, 1)
	assert.Equal(t, []string{"client-1"}, store.keys)
}

func TestSubmitDuplicateWritesNothing(t *testing.T) {
	store := &fakeStore{keys: []string{"someone", "client-1"}}

	dup, err := IsDuplicate(context.Background(), store, "client-1")
	require.NoError(t, err)
	assert.True(t, dup)

	store.calls = nil
	err = Submit(context.Background(), store, testRequest())
	require.ErrorIs(t, err, ErrDuplicateSubmission)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepCheckDuplicate, stepErr.Step)
	assert.Equal(t, []string{"keys"}, store.calls)
	assert.Empty(t, store.top5)
	assert.Empty(t, store.tally)
}

func TestSubmitStopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		failOn    string
		wantStep  string
		wantCalls []string
		wantTop5  int
		wantTally int
	}{
		{"keys", StepCheckDuplicate, []string{"keys"}, 0, 0},
		{"top5", StepWriteTop5, []string{"keys", "top5"}, 0, 0},
		{"tally", StepWriteTally, []string{"keys", "top5", "tally"}, 1, 0},
		{"log", StepLogID, []string{"keys", "top5", "tally", "log"}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			store := &fakeStore{failOn: tt.failOn}
			err := Submit(context.Background(), store, testRequest())

			require.ErrorIs(t, err, errRemote)
			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.wantStep, stepErr.Step)
			assert.Equal(t, tt.wantCalls, store.calls)
			// earlier writes are not rolled back
			assert.Len(t, store.top5, tt.wantTop5)
			assert.Len(t, store.tally, tt.wantTally)
		})
	}
}

func TestSubmitRequiresClientID(t *testing.T) {
	store := &fakeStore{}
	req := testRequest()
	req.ClientID = ""

	assert.ErrorIs(t, Submit(context.Background(), store, req), ErrMissingClientID)
	assert.Empty(t, store.calls)
}

func TestPipelineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ran := []string{}

	p := NewPipeline().
		Add("first", func(ctx context.Context) error {
			ran = append(ran, "first")
			cancel()
			return nil
		}).
		Add("second", func(ctx context.Context) error {
			ran = append(ran, "second")
			return nil
		})

	assert.Equal(t, []string{"first", "second"}, p.Steps())

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"first"}, ran)
}
