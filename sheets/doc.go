// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sheets stores submissions in a Google spreadsheet using a bearer
// token supplied by the caller.
package sheets
