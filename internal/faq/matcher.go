// Package faq scores free-text questions against the static FAQ table.
package faq

import (
	"sort"
	"strings"
	"unicode"

	"oyunlag-bot/internal/domain"
)

const (
	questionWeight = 50
	answerWeight   = 20
	keywordWeight  = 10
	maxMatches     = 3
	minQueryRunes  = 2
)

// Match ranks entries against the query and returns at most the top 3.
// Ties keep the entry order of the table (stable sort), so earlier FAQ
// records win equal scores. Pure: no side effects, deterministic.
func Match(query string, entries []domain.FAQEntry) []domain.FAQMatch {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if countNonSpace(normalized) < minQueryRunes {
		return nil
	}

	var matches []domain.FAQMatch
	for _, entry := range entries {
		score := scoreEntry(normalized, entry)
		if score == 0 {
			continue
		}
		matches = append(matches, domain.FAQMatch{Entry: entry, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

func scoreEntry(query string, entry domain.FAQEntry) int {
	score := 0
	if strings.Contains(strings.ToLower(entry.Question), query) {
		score += questionWeight
	}
	if strings.Contains(strings.ToLower(entry.Answer), query) {
		score += answerWeight
	}
	for _, keyword := range entry.Keywords {
		kw := strings.ToLower(keyword)
		if strings.Contains(query, kw) || strings.Contains(kw, query) {
			score += keywordWeight
		}
	}
	return score
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
