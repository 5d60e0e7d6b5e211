// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL sticks to the dialect shared by SQLite and PostgreSQL: no
// NOW() defaults (timestamps are supplied by the application) and no
// engine-specific column types.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Words
-- word is the normalized text (lowercase, trimmed, single internal
-- spaces) and acts as the primary key. Score is never stored; it is
-- always computed as upvotes - downvotes at read time.
CREATE TABLE IF NOT EXISTS word (
    word TEXT PRIMARY KEY,
    upvotes INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
    downvotes INTEGER NOT NULL DEFAULT 0 CHECK (downvotes >= 0),
    created_at TIMESTAMP NOT NULL
);

-- Vote ledger
-- One row per (client, word). The primary key conflict on insert is the
-- serialization point that makes vote dedup atomic.
CREATE TABLE IF NOT EXISTS vote (
    client_id TEXT NOT NULL,
    word TEXT NOT NULL REFERENCES word(word) ON DELETE CASCADE,
    direction TEXT NOT NULL CHECK (direction IN ('up', 'down')),
    cast_at TIMESTAMP NOT NULL,
    PRIMARY KEY (client_id, word)
);

CREATE INDEX IF NOT EXISTS idx_vote_word ON vote(word);

-- Registered clients (optional; voting also works with header tokens
-- or hashed IPs as identity)
CREATE TABLE IF NOT EXISTS client (
    id TEXT PRIMARY KEY,
    client_uuid TEXT NOT NULL UNIQUE,
    client_token TEXT NOT NULL UNIQUE,
    platform TEXT NOT NULL DEFAULT 'web',
    created_at TIMESTAMP NOT NULL,
    last_seen_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_client_uuid ON client(client_uuid);
`
