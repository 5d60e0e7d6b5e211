// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/phictionary/models"
	"github.com/danielhkuo/phictionary/testutil"
)

// Concurrent duplicate votes from one client must collapse to a single
// recorded vote; the ledger's primary key is the serialization point.
func TestConcurrentDuplicateVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	testutil.CreateTestWord(t, db, "phone", 0, 0)

	const attempts = 10
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/words/phone/upvote", nil,
				map[string]string{"X-Client-Token": "tok-race"})
			req.SetPathValue("word", "phone")
			w := httptest.NewRecorder()
			handler.Upvote(w, req)
			statuses[i] = w.Code
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, code := range statuses {
		switch code {
		case http.StatusOK:
			succeeded++
		case http.StatusConflict:
		default:
			t.Errorf("Unexpected status %d", code)
		}
	}
	if succeeded != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", succeeded)
	}

	var upvotes int
	db.QueryRow(`SELECT upvotes FROM word WHERE word = 'phone'`).Scan(&upvotes)
	if upvotes != 1 {
		t.Errorf("Expected counter 1 after racing duplicates, got %d", upvotes)
	}
}

func TestConcurrentDistinctClientVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	testutil.CreateTestWord(t, db, "phone", 0, 0)

	const clients = 10

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/words/phone/upvote", nil,
				map[string]string{"X-Client-Token": fmt.Sprintf("tok-%d", i)})
			req.SetPathValue("word", "phone")
			w := httptest.NewRecorder()
			handler.Upvote(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Client %d: expected 200, got %d", i, w.Code)
			}
		}(i)
	}
	wg.Wait()

	var upvotes int
	db.QueryRow(`SELECT upvotes FROM word WHERE word = 'phone'`).Scan(&upvotes)
	if upvotes != clients {
		t.Errorf("Expected %d upvotes, got %d", clients, upvotes)
	}
}

// Racing adds of the same word must produce one 201 and the rest 409.
func TestConcurrentDuplicateAdds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewWordHandler(db, cfg)

	const attempts = 10
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/words",
				models.AddWordRequest{NewWord: "phoenix"}, nil)
			w := httptest.NewRecorder()
			handler.Add(w, req)
			statuses[i] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range statuses {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Errorf("Unexpected status %d", code)
		}
	}
	if created != 1 {
		t.Errorf("Expected exactly 1 created, got %d", created)
	}

	var count int
	db.QueryRow(`SELECT COUNT(*) FROM word WHERE word = 'phoenix'`).Scan(&count)
	if count != 1 {
		t.Errorf("Expected 1 stored row, got %d", count)
	}
}
