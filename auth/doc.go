// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session keys, client ids and other identifiers.

# Session Keys

Session keys use HMAC-SHA256 to create deterministic, verifiable keys:

	key := auth.GenerateSessionKey(sessionID, salt)
	err := auth.ValidateSessionKey(sessionID, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same session ID and salt always produce the same key, so the server
validates it without storing it. Clients send it as X-Session-Key.

# Client IDs

The client id is the idempotency key for submissions. The client stores it
and sends it with every new session; the server only generates one when
the client has none:

	id := auth.GenerateClientID()
	err := auth.ValidateClientID(id)

# IP Hashing

For privacy-preserving logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
