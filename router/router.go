// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/handlers"
	"github.com/danielhkuo/phictionary/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	wordHandler := handlers.NewWordHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	searchHandler := handlers.NewSearchHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Word catalog
	// Literal segments before the {word} wildcard, so /words/random and
	// /words/search never match as word names
	mux.HandleFunc("GET /words", middleware.WithLogging(wordHandler.List))
	mux.HandleFunc("GET /words/random", middleware.WithLogging(wordHandler.Random))
	mux.HandleFunc("GET /words/search", middleware.WithLogging(searchHandler.Search))
	mux.HandleFunc("GET /words/{word}", middleware.WithLogging(wordHandler.Get))
	mux.HandleFunc("POST /words", middleware.WithLogging(wordHandler.Add))
	mux.HandleFunc("DELETE /words/{word}", middleware.WithLogging(wordHandler.Remove))

	// Voting operations
	mux.HandleFunc("POST /words/{word}/upvote", middleware.WithLogging(votingHandler.Upvote))
	mux.HandleFunc("POST /words/{word}/downvote", middleware.WithLogging(votingHandler.Downvote))

	// Client management
	mux.HandleFunc("POST /clients/register", middleware.WithLogging(clientHandler.Register))
	mux.HandleFunc("GET /clients/me", middleware.WithLogging(clientHandler.GetMe))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("phictionary API v1"))
	})

	return mux
}
