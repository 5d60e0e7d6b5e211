// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - word: Word text (normalized, primary key) with vote counters
  - vote: Vote ledger, one row per (client, word)
  - client: Registered client identities

# Relationships

	word 1──* vote

vote.word references word(word) with ON DELETE CASCADE; word removal also
deletes the ledger rows explicitly inside the removal transaction, so the
cascade holds on SQLite connections without the foreign_keys pragma.

# Score

The word table intentionally has no score column. Score is derived as
upvotes - downvotes whenever a row is read, which removes any chance of
counter/score drift.

# Dialect

The DDL is restricted to what SQLite and PostgreSQL share: $N
placeholders, ON CONFLICT clauses, TIMESTAMP columns with values supplied
by Go.
*/
package db
