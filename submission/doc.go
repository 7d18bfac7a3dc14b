// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission persists a finished top 5 to an append-only store.

# Write Chain

Submit runs four steps in order, stopping at the first failure:

	check-duplicate -> write-top5 -> write-tally -> log-id

The duplicate check reads every logged client id; a hit returns
ErrDuplicateSubmission before anything is written. There is no rollback:
if write-tally fails the top 5 row is already stored.

Failures come back as *StepError so callers can tell which step broke:

	var stepErr *submission.StepError
	if errors.As(err, &stepErr) {
		slog.Warn("submit failed", "step", stepErr.Step)
	}

# Stores

Store is implemented by sheets.Store (Google Sheets) and db.SubmissionStore
(sqlite or postgres).
*/
package submission
