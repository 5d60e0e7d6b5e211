// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/danielhkuo/phictionary/cliparse"
	"github.com/danielhkuo/phictionary/models"
)

// trigrams extracts the trigram set of a normalized string, padding each
// token with two leading and one trailing space the way pg_trgm does, so
// word boundaries carry extra weight.
func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		padded := "  " + token + " "
		for i := 0; i+3 <= len(padded); i++ {
			set[padded[i:i+3]] = struct{}{}
		}
	}
	return set
}

// trigramSimilarity returns the Jaccard similarity of the two trigram
// sets, in [0, 1]. Identical strings score 1; strings sharing no
// trigrams score 0.
func trigramSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ta, tb := trigrams(a), trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return float64(shared) / float64(union)
}

// levenshteinSimilarity maps edit distance onto [0, 1]: 1 minus the
// distance normalized by the longer string's length.
func levenshteinSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	sim := 1 - float64(d)/float64(longest)
	if sim < 0 {
		return 0
	}
	return sim
}

// similarityFunc selects the configured metric.
func similarityFunc(cfg cliparse.Config) func(a, b string) float64 {
	if cfg.SimilarityMetric == cliparse.MetricLevenshtein {
		return levenshteinSimilarity
	}
	return trigramSimilarity
}

// searchWords scores every stored word against the normalized query and
// returns the top matches with positive similarity, ordered by
// similarity, then score, then word.
func searchWords(db *sql.DB, cfg cliparse.Config, query string, limit int) ([]models.SearchWord, error) {
	rows, err := db.Query(`SELECT word, upvotes, downvotes FROM word`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	similarity := similarityFunc(cfg)

	results := []models.SearchWord{}
	for rows.Next() {
		var sw models.SearchWord
		if err := rows.Scan(&sw.Word, &sw.Upvotes, &sw.Downvotes); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		sw.Score = sw.Upvotes - sw.Downvotes
		sw.Similarity = similarity(query, sw.Word)
		if sw.Similarity > 0 {
			results = append(results, sw)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Word < results[j].Word
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
