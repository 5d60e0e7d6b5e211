// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/middleware"
	"github.com/danielhkuo/phictionary/models"
)

type WordHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewWordHandler(db *sql.DB, cfg cliparse.Config) *WordHandler {
	return &WordHandler{db: db, cfg: cfg}
}

// normalizeWord applies the canonical word form: lowercase, trimmed,
// internal whitespace collapsed to single spaces. Every word-keyed
// operation goes through this, so matching is case- and
// whitespace-insensitive.
func normalizeWord(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// validateWord checks an already-normalized word against the admission
// rules: 1-25 characters, letters and spaces only, must contain "ph".
func validateWord(word string) error {
	if word == "" {
		return errors.New("word is required")
	}
	if utf8.RuneCountInString(word) > models.MaxWordLength {
		return fmt.Errorf("word is too long (maximum %d characters)", models.MaxWordLength)
	}
	for _, r := range word {
		if (r < 'a' || r > 'z') && r != ' ' {
			return errors.New("word may only contain letters and spaces")
		}
	}
	if !strings.Contains(word, models.RequiredSubstring) {
		return fmt.Errorf("word must contain %q", models.RequiredSubstring)
	}
	return nil
}

// List handles GET /words
// Pages are 1-indexed and ordered by score descending. Ordering is
// recomputed from the live counters on every call: two sequential page
// reads are not a consistent snapshot if votes land between them.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	pageSize := models.DefaultPageSize
	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "page_size must be a positive integer")
			return
		}
		if n > models.MaxPageSize {
			n = models.MaxPageSize
		}
		pageSize = n
	}

	pageNumber := 1
	if v := r.URL.Query().Get("page_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "page_number must be a positive integer")
			return
		}
		pageNumber = n
	}

	offset := (pageNumber - 1) * pageSize
	rows, err := h.db.Query(`
		SELECT word, upvotes, downvotes
		FROM word
		ORDER BY (upvotes - downvotes) DESC, created_at ASC, word ASC
		LIMIT $1 OFFSET $2
	`, pageSize, offset)
	if err != nil {
		slog.Error("failed to query words", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	words := []models.Word{}
	for rows.Next() {
		var word models.Word
		if err := rows.Scan(&word.Word, &word.Upvotes, &word.Downvotes); err != nil {
			slog.Error("failed to scan word", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		word.Score = word.Upvotes - word.Downvotes
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read words", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListWordsResponse{Words: words})
}

// Random handles GET /words/random
// Each call is an independent uniform pick; callers prefetching a "next"
// word simply call twice.
func (h *WordHandler) Random(w http.ResponseWriter, r *http.Request) {
	var word models.Word
	err := h.db.QueryRow(`
		SELECT word, upvotes, downvotes FROM word ORDER BY RANDOM() LIMIT 1
	`).Scan(&word.Word, &word.Upvotes, &word.Downvotes)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No words available")
		return
	}
	if err != nil {
		slog.Error("failed to pick random word", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	word.Score = word.Upvotes - word.Downvotes
	middleware.JSONResponse(w, http.StatusOK, word)
}

// Get handles GET /words/{word}
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	target := normalizeWord(r.PathValue("word"))
	if target == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "word is required")
		return
	}

	var word models.Word
	err := h.db.QueryRow(`
		SELECT word, upvotes, downvotes FROM word WHERE word = $1
	`, target).Scan(&word.Word, &word.Upvotes, &word.Downvotes)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Word not found")
		return
	}
	if err != nil {
		slog.Error("failed to query word", "error", err, "word", target)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	word.Score = word.Upvotes - word.Downvotes
	middleware.JSONResponse(w, http.StatusOK, word)
}

// Add handles POST /words
// On success the new word is auto-upvoted on behalf of the suggesting
// client. The upvote is a chained secondary action: if it fails the word
// stays and the failure is only reported in the response message.
func (h *WordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddWordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	word := normalizeWord(req.NewWord)
	if err := validateWord(word); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.db.Exec(`
		INSERT INTO word (word, upvotes, downvotes, created_at)
		VALUES ($1, 0, 0, $2)
		ON CONFLICT (word) DO NOTHING
	`, word, time.Now())
	if err != nil {
		slog.Error("failed to insert word", "error", err, "word", word)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add word")
		return
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add word")
		return
	}
	if inserted == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Word already exists")
		return
	}

	slog.Info("word added", "word", word)

	message := fmt.Sprintf("Word %q added successfully", word)
	autoUpvoted := false

	// Secondary action; the word itself is already committed
	clientID := clientIdentity(r, h.cfg)
	if _, err := applyVote(h.db, word, clientID, models.DirectionUp); err != nil {
		slog.Warn("auto-upvote failed", "error", err, "word", word)
		message += " (auto-upvote failed)"
	} else {
		autoUpvoted = true
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddWordResponse{
		Word:        word,
		Message:     message,
		AutoUpvoted: autoUpvoted,
	})
}

// Remove handles DELETE /words/{word}
// Deletes the word and its vote ledger rows in one transaction, so the
// same text can be re-added later and voted on by everyone again.
func (h *WordHandler) Remove(w http.ResponseWriter, r *http.Request) {
	target := normalizeWord(r.PathValue("word"))
	if target == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "word is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Explicit ledger cleanup; does not rely on the FK cascade being
	// enabled on the connection
	if _, err := tx.Exec(`DELETE FROM vote WHERE word = $1`, target); err != nil {
		slog.Error("failed to delete votes", "error", err, "word", target)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove word")
		return
	}

	res, err := tx.Exec(`DELETE FROM word WHERE word = $1`, target)
	if err != nil {
		slog.Error("failed to delete word", "error", err, "word", target)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove word")
		return
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove word")
		return
	}
	if deleted == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Word not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove word")
		return
	}

	slog.Info("word removed", "word", target)

	middleware.JSONResponse(w, http.StatusOK, models.RemoveWordResponse{
		Message: fmt.Sprintf("Word %q removed successfully", target),
	})
}
