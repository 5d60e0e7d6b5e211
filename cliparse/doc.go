// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv), so
values placed there act as environment variables.

# Config Fields

  - Port: Server listen port (default: 3818)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - ClientSalt: Secret for client IP hashing (required)
  - SimilarityMetric: "trigram" or "levenshtein" (default: trigram)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--client-salt Client IP hashing salt
	--similarity  Search similarity metric

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	CLIENT_SALT       → --client-salt
	SIMILARITY_METRIC → --similarity

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - CLIENT_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - SIMILARITY_METRIC must be trigram or levenshtein
*/
package cliparse
