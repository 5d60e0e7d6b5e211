// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/db"
)

// dbCounter gives every test database a unique name so shared-cache
// in-memory databases from different tests never alias each other.
var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:phictionary_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single pooled connection keeps the in-memory database alive for
	// the whole test and serializes writers (no SQLITE_BUSY).
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3818,
		DatabaseURL:      "file:test.db",
		DatabaseType:     cliparse.DatabaseSQLite,
		ClientSalt:       "test-client-salt",
		SimilarityMetric: cliparse.MetricTrigram,
	}
}

// CreateTestWord inserts a word with the given counters
func CreateTestWord(t *testing.T, conn *sql.DB, word string, upvotes, downvotes int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO word (word, upvotes, downvotes, created_at)
		VALUES ($1, $2, $3, $4)
	`, word, upvotes, downvotes, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test word %q: %v", word, err)
	}
}

// CastTestVote inserts a vote ledger row directly
func CastTestVote(t *testing.T, conn *sql.DB, clientID, word, direction string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (client_id, word, direction, cast_at)
		VALUES ($1, $2, $3, $4)
	`, clientID, word, direction, time.Now())
	if err != nil {
		t.Fatalf("Failed to cast test vote on %q: %v", word, err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
