// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/middleware"
	"github.com/danielhkuo/phictionary/models"
)

type SearchHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSearchHandler(db *sql.DB, cfg cliparse.Config) *SearchHandler {
	return &SearchHandler{db: db, cfg: cfg}
}

// Search handles GET /words/search
// Fuzzy-matches the query against the stored words. A query that matches
// nothing is a successful request with an empty result list, not an
// error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := normalizeWord(r.URL.Query().Get("query"))
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "query is required")
		return
	}

	limit := models.DefaultSearchLimit
	if v := r.URL.Query().Get("limit_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit_count must be a positive integer")
			return
		}
		if n > models.MaxSearchLimit {
			n = models.MaxSearchLimit
		}
		limit = n
	}

	results, err := searchWords(h.db, h.cfg, query, limit)
	if err != nil {
		slog.Error("search failed", "error", err, "query", query)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Search failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchWordsResponse{Results: results})
}
