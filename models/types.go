package models

import "time"

// Vote direction constants
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Client platform constants
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Word validation constants
const (
	MaxWordLength     = 25
	RequiredSubstring = "ph"
)

// Paging and search limits
const (
	DefaultPageSize    = 20
	MaxPageSize        = 100
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Request types

type AddWordRequest struct {
	NewWord string `json:"new_word"`
}

type RegisterClientRequest struct {
	Platform string `json:"platform,omitempty"`
}

// Response types

type ListWordsResponse struct {
	Words []Word `json:"words"`
}

type AddWordResponse struct {
	Word        string `json:"word"`
	Message     string `json:"message"`
	AutoUpvoted bool   `json:"auto_upvoted"`
}

type RemoveWordResponse struct {
	Message string `json:"message"`
}

type VoteResponse struct {
	Word    Word   `json:"word"`
	Message string `json:"message"`
}

type SearchWordsResponse struct {
	Results []SearchWord `json:"results"`
}

type RegisterClientResponse struct {
	ClientToken string `json:"client_token"`
	IsNew       bool   `json:"is_new"`
}

// Domain types

// Word is the wire shape of a stored word. Score is always derived from
// the two counters when the struct is built, never read from storage.
type Word struct {
	Word      string `json:"word"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Score     int    `json:"score"`
}

// SearchWord is a Word plus its similarity to the search query, in [0, 1].
type SearchWord struct {
	Word       string  `json:"word"`
	Upvotes    int     `json:"upvotes"`
	Downvotes  int     `json:"downvotes"`
	Score      int     `json:"score"`
	Similarity float64 `json:"similarity"`
}

type ClientInfo struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
