// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/phictionary/models"
	"github.com/danielhkuo/phictionary/router"
	"github.com/danielhkuo/phictionary/testutil"
)

// Full lifecycle through the router: register a client, suggest a word,
// have a second client vote on it, search for it, remove it, and re-add
// it so everyone can vote again.
func TestFullWordLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := router.NewRouter(db, cfg)

	// Register the suggesting client
	req := testutil.MakeRequest("POST", "/clients/register",
		models.RegisterClientRequest{Platform: "web"},
		map[string]string{"X-Client-UUID": "uuid-suggester"})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var reg models.RegisterClientResponse
	testutil.AssertJSON(t, w, &reg)
	suggester := map[string]string{"X-Client-Token": reg.ClientToken}

	// Suggest a word; the suggester's upvote is applied automatically
	req = testutil.MakeRequest("POST", "/words",
		models.AddWordRequest{NewWord: "Phosphorescence"}, suggester)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var added models.AddWordResponse
	testutil.AssertJSON(t, w, &added)
	word := added.Word
	if !added.AutoUpvoted {
		t.Error("Expected auto-upvote for the suggester")
	}

	// The suggester cannot vote again on their own word
	req = testutil.MakeRequest("POST", "/words/"+word+"/upvote", nil, suggester)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// A second client downvotes
	other := map[string]string{"X-Client-Token": "tok-other"}
	req = testutil.MakeRequest("POST", "/words/"+word+"/downvote", nil, other)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var vote models.VoteResponse
	testutil.AssertJSON(t, w, &vote)
	if vote.Word.Upvotes != 1 || vote.Word.Downvotes != 1 || vote.Word.Score != 0 {
		t.Errorf("Expected 1/1 score 0, got %d/%d score %d",
			vote.Word.Upvotes, vote.Word.Downvotes, vote.Word.Score)
	}

	// The word shows up in the listing
	req = testutil.MakeRequest("GET", "/words", nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.ListWordsResponse
	testutil.AssertJSON(t, w, &list)
	if len(list.Words) != 1 || list.Words[0].Word != word {
		t.Fatalf("Expected listing to contain %q, got %+v", word, list.Words)
	}

	// And in a fuzzy search
	req = testutil.MakeRequest("GET", "/words/search?query="+word, nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var search models.SearchWordsResponse
	testutil.AssertJSON(t, w, &search)
	if len(search.Results) != 1 || search.Results[0].Similarity != 1 {
		t.Fatalf("Expected exact search hit for %q", word)
	}

	// Remove the word; the ledger goes with it
	req = testutil.MakeRequest("DELETE", "/words/"+word, nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/words/"+word, nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Re-adding starts fresh: the old voters can vote again
	req = testutil.MakeRequest("POST", "/words",
		models.AddWordRequest{NewWord: word}, other)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("POST", "/words/"+word+"/upvote", nil, suggester)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestAnonymousLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := router.NewRouter(db, cfg)

	// Anonymous suggestion; identity comes from the remote address
	req := testutil.MakeRequest("POST", "/words",
		models.AddWordRequest{NewWord: "phantom"}, nil)
	req.RemoteAddr = "203.0.113.9:40000"
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Same address cannot add a second vote
	req = testutil.MakeRequest("POST", "/words/phantom/upvote", nil, nil)
	req.RemoteAddr = "203.0.113.9:40001"
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// A registered token is a distinct identity even from the same address
	req = testutil.MakeRequest("POST", "/words/phantom/upvote", nil,
		map[string]string{"X-Client-Token": "tok-reg"})
	req.RemoteAddr = "203.0.113.9:40002"
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var vote models.VoteResponse
	testutil.AssertJSON(t, w, &vote)
	if vote.Word.Upvotes != 2 {
		t.Errorf("Expected 2 upvotes, got %d", vote.Word.Upvotes)
	}
}
