// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ingest loads the candidate movies for a session.

CSVSource accepts an http(s) URL (for example a published spreadsheet
exported as CSV) or a local path. Columns are matched by header name,
case-insensitively:

	ID, Title, Year, Director, Genres, Trailer, Rotten Tomatoes

Title is required. Unknown columns land in Movie.Extra. A row without an
ID gets its zero-based row index, so the same file always yields the same
ids.
*/
package ingest
