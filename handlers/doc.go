// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Phictionary API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - WordHandler: Word catalog (list, random, get, add, remove)
  - VotingHandler: Upvotes and downvotes
  - SearchHandler: Fuzzy word search
  - ClientHandler: Client registration and lookup

Handlers are created via constructor functions that accept *sql.DB and Config:

	wordHandler := handlers.NewWordHandler(db, cfg)

# Word Catalog

Words are keyed by their normalized text (lowercase, trimmed, single
internal spaces) and must contain the substring "ph":

	GET    /words           → List (paged, best score first)
	GET    /words/random    → Random
	GET    /words/{word}    → Get
	POST   /words           → Add (auto-upvotes for the suggester)
	DELETE /words/{word}    → Remove (drops the vote ledger too)

# Voting Flow

Each client may vote at most once per word, in one direction:

	POST /words/{word}/upvote   → Upvote
	POST /words/{word}/downvote → Downvote

The client identity is the X-Client-Token header when present, otherwise
a salted hash of the caller's IP. Duplicate votes return 409.

# Search

Fuzzy matching is implemented in similarity.go:

	results, err := searchWords(db, cfg, query, limit)

The metric is trigram Jaccard similarity by default, or normalized
Levenshtein when configured. Scores are in [0, 1] with exact matches at 1.

# Client Tracking

Optional registration for clients that want a stable identity across IPs:

	POST /clients/register → Register
	GET  /clients/me       → GetMe

Client operations require the X-Client-UUID header.
*/
package handlers
