// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/phictionary/auth"
	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/middleware"
	"github.com/danielhkuo/phictionary/models"
)

type ClientHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewClientHandler(db *sql.DB, cfg cliparse.Config) *ClientHandler {
	return &ClientHandler{db: db, cfg: cfg}
}

// Register handles POST /clients/register
// Issues a stable voting token for the installation identified by
// X-Client-UUID. Registering the same UUID again returns the existing
// token, so reinstalls keep their vote history.
func (h *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	clientUUID := r.Header.Get("X-Client-UUID")
	if clientUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Client-UUID header required")
		return
	}

	var req models.RegisterClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	platform := req.Platform
	if platform == "" {
		platform = models.PlatformWeb
	}
	if !isValidPlatform(platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "platform must be one of: ios, android, web")
		return
	}

	var existingToken string
	err := h.db.QueryRow(`
		SELECT client_token FROM client WHERE client_uuid = $1
	`, clientUUID).Scan(&existingToken)

	if err == nil {
		_, err = h.db.Exec(`
			UPDATE client SET last_seen_at = $1 WHERE client_uuid = $2
		`, time.Now(), clientUUID)
		if err != nil {
			slog.Error("failed to update client last_seen_at", "error", err)
		}

		slog.Info("client registered (existing)", "client_uuid", clientUUID)
		middleware.JSONResponse(w, http.StatusOK, models.RegisterClientResponse{
			ClientToken: existingToken,
			IsNew:       false,
		})
		return
	}

	if err != sql.ErrNoRows {
		slog.Error("failed to query client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	clientToken, err := auth.GenerateClientToken()
	if err != nil {
		slog.Error("failed to generate client token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register client")
		return
	}

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO client (id, client_uuid, client_token, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), clientUUID, clientToken, platform, now, now)

	if err != nil {
		slog.Error("failed to insert client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register client")
		return
	}

	slog.Info("client registered (new)", "client_uuid", clientUUID, "platform", platform)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterClientResponse{
		ClientToken: clientToken,
		IsNew:       true,
	})
}

// GetMe handles GET /clients/me
// Returns current client info
func (h *ClientHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	clientUUID := r.Header.Get("X-Client-UUID")
	if clientUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Client-UUID header required")
		return
	}

	var client models.ClientInfo
	err := h.db.QueryRow(`
		SELECT id, platform, created_at, last_seen_at
		FROM client
		WHERE client_uuid = $1
	`, clientUUID).Scan(&client.ID, &client.Platform, &client.CreatedAt, &client.LastSeenAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Client not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	_, err = h.db.Exec(`
		UPDATE client SET last_seen_at = $1 WHERE id = $2
	`, time.Now(), client.ID)
	if err != nil {
		slog.Error("failed to update client last_seen_at", "error", err)
	}

	middleware.JSONResponse(w, http.StatusOK, client)
}

func isValidPlatform(platform string) bool {
	switch platform {
	case models.PlatformIOS, models.PlatformAndroid, models.PlatformWeb:
		return true
	}
	return false
}
