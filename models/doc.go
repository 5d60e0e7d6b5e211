// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddWordRequest: new_word
  - RegisterClientRequest: platform

# Response Types

Types for JSON responses:

  - ListWordsResponse: words
  - AddWordResponse: word, message, auto_upvoted
  - RemoveWordResponse: message
  - VoteResponse: word, message
  - SearchWordsResponse: results
  - RegisterClientResponse: client_token, is_new
  - ErrorResponse: error, message

# Domain Types

Wire shapes:

  - Word: word, upvotes, downvotes, score (score = upvotes - downvotes,
    computed when the struct is built)
  - SearchWord: Word fields plus similarity in [0, 1]
  - ClientInfo: registered client metadata

# Constants

Vote directions:

	DirectionUp   = "up"
	DirectionDown = "down"

Validation:

	MaxWordLength     = 25
	RequiredSubstring = "ph"

Paging and search:

	DefaultPageSize    = 20
	MaxPageSize        = 100
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
*/
package models
