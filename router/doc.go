// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Phictionary API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Word catalog:

	GET    /words         - List words (paged, best score first)
	GET    /words/random  - Pick a uniformly random word
	GET    /words/search  - Fuzzy search
	GET    /words/{word}  - Get one word
	POST   /words         - Add a word
	DELETE /words/{word}  - Remove a word and its votes

Voting (identity from X-Client-Token or hashed IP):

	POST /words/{word}/upvote   - Record an upvote
	POST /words/{word}/downvote - Record a downvote

Client management (requires X-Client-UUID):

	POST /clients/register - Register client, get a voting token
	GET  /clients/me       - Get client info

# Handler Initialization

The router creates handler instances with dependency injection:

	wordHandler := handlers.NewWordHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	searchHandler := handlers.NewSearchHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
