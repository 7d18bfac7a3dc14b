// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session tracks one user's run through the tournament, face-off,
// ordering and submission phases, and keeps live sessions in an expiring
// in-memory registry.
package session
