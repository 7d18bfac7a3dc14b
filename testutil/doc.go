// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil holds shared helpers for handler and router tests: an
// in-memory database, a test config, fixed-order sessions and request
// builders.
package testutil
