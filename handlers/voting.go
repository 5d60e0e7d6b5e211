// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/phictionary/auth"
	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/middleware"
	"github.com/danielhkuo/phictionary/models"
)

var (
	errWordNotFound = errors.New("word not found")
	errAlreadyVoted = errors.New("client has already voted on this word")
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// clientIdentity resolves the voting identity for a request. Clients
// that registered send their token in X-Client-Token; everyone else is
// identified by a salted hash of their IP, so anonymous votes still
// dedupe per household without storing raw addresses.
func clientIdentity(r *http.Request, cfg cliparse.Config) string {
	if token := r.Header.Get("X-Client-Token"); token != "" {
		return token
	}
	return "ip:" + auth.HashIP(middleware.GetClientIP(r), cfg.ClientSalt)
}

// applyVote records a single vote and bumps the matching counter. The
// ledger insert uses the (client_id, word) primary key as the
// serialization point: under concurrent duplicate votes exactly one
// insert lands and the rest see zero rows affected. Returns the updated
// counters on success.
func applyVote(db *sql.DB, word, clientID, direction string) (models.Word, error) {
	tx, err := db.Begin()
	if err != nil {
		return models.Word{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(`SELECT 1 FROM word WHERE word = $1`, word).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.Word{}, errWordNotFound
	}
	if err != nil {
		return models.Word{}, fmt.Errorf("check word: %w", err)
	}

	res, err := tx.Exec(`
		INSERT INTO vote (client_id, word, direction, cast_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id, word) DO NOTHING
	`, clientID, word, direction, time.Now())
	if err != nil {
		return models.Word{}, fmt.Errorf("insert vote: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return models.Word{}, fmt.Errorf("rows affected: %w", err)
	}
	if inserted == 0 {
		return models.Word{}, errAlreadyVoted
	}

	column := "upvotes"
	if direction == models.DirectionDown {
		column = "downvotes"
	}
	var updated models.Word
	err = tx.QueryRow(`
		UPDATE word SET `+column+` = `+column+` + 1
		WHERE word = $1
		RETURNING word, upvotes, downvotes
	`, word).Scan(&updated.Word, &updated.Upvotes, &updated.Downvotes)
	if err != nil {
		return models.Word{}, fmt.Errorf("update counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Word{}, fmt.Errorf("commit: %w", err)
	}

	updated.Score = updated.Upvotes - updated.Downvotes
	return updated, nil
}

// Upvote handles POST /words/{word}/upvote
func (h *VotingHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, models.DirectionUp)
}

// Downvote handles POST /words/{word}/downvote
func (h *VotingHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, models.DirectionDown)
}

func (h *VotingHandler) vote(w http.ResponseWriter, r *http.Request, direction string) {
	word := normalizeWord(r.PathValue("word"))
	if word == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "word is required")
		return
	}

	clientID := clientIdentity(r, h.cfg)

	updated, err := applyVote(h.db, word, clientID, direction)
	if err == errWordNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Word not found")
		return
	}
	if err == errAlreadyVoted {
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this word")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "word", word, "direction", direction)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "word", word, "direction", direction)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Word:    updated,
		Message: fmt.Sprintf("Vote recorded for %q", word),
	})
}
