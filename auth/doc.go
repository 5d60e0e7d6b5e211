// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and IP hashing utilities.

# Client Tokens

Client tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateClientToken()

Tokens are URL-safe base64 encoded. A token is the client's voting
identity: the vote ledger is keyed by it, so presenting the same token
preserves the client's one-vote-per-word history across sessions.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For requests without a client token, a salted IP hash serves as the
voting identity:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. The hash is one-way,
so raw client IPs are never stored.
*/
package auth
