// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Phictionary API server.

Phictionary is a crowd-ranked dictionary of "ph" words: anonymous clients
browse the leaderboard, vote words up or down, search fuzzily, and suggest
new entries. Each client gets at most one vote per word.

# Starting the Server

The server runs on SQLite by default:

	go run main.go -d phictionary.db

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - CLIENT_SALT (--client-salt): Secret for IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - SIMILARITY_METRIC (--similarity): "trigram" or "levenshtein"

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (words, voting, search, clients)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Token generation and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
