package faq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"oyunlag-bot/internal/domain"
)

var testEntries = []domain.FAQEntry{
	{
		ID:       "faq-a",
		Question: "What is the tuition fee?",
		Answer:   "Tuition is 12.5m per year.",
		Keywords: []string{"tuition", "fee", "price"},
	},
	{
		ID:       "faq-b",
		Question: "Is there a school bus?",
		Answer:   "Yes, the bus covers most districts.",
		Keywords: []string{"bus", "transport"},
	},
	{
		ID:       "faq-c",
		Question: "Do students wear a uniform?",
		Answer:   "Yes, a uniform is required.",
		Keywords: []string{"uniform", "clothes"},
	},
	{
		ID:       "faq-d",
		Question: "How long is the school day?",
		Answer:   "Classes run from 8am to 4pm.",
		Keywords: []string{"schedule", "hours", "day"},
	},
}

func TestMatchShortQueryReturnsNothing(t *testing.T) {
	require.Empty(t, Match("", testEntries))
	require.Empty(t, Match("a", testEntries))
	require.Empty(t, Match("  b  ", testEntries))
}

func TestMatchTwoCharQueryIsScored(t *testing.T) {
	// Two non-whitespace runes is the minimum accepted query.
	got := Match("8a", testEntries)
	require.Len(t, got, 1)
	require.Equal(t, "faq-d", got[0].Entry.ID)
}

func TestMatchExactQuestionRanksFirst(t *testing.T) {
	got := Match("What is the tuition fee?", testEntries)
	require.NotEmpty(t, got)
	require.Equal(t, "faq-a", got[0].Entry.ID)
	require.GreaterOrEqual(t, got[0].Score, 50)
}

func TestMatchKeywordBothDirections(t *testing.T) {
	// Query contains the keyword.
	got := Match("how much is tuition here", testEntries)
	require.NotEmpty(t, got)
	require.Equal(t, "faq-a", got[0].Entry.ID)

	// Keyword contains the query.
	got = Match("unifor", testEntries)
	require.NotEmpty(t, got)
	require.Equal(t, "faq-c", got[0].Entry.ID)
}

func TestMatchCapsAtThree(t *testing.T) {
	entries := []domain.FAQEntry{
		{ID: "1", Keywords: []string{"school"}},
		{ID: "2", Keywords: []string{"school"}},
		{ID: "3", Keywords: []string{"school"}},
		{ID: "4", Keywords: []string{"school"}},
	}
	got := Match("school", entries)
	require.Len(t, got, 3)
}

func TestMatchTieBreakKeepsTableOrder(t *testing.T) {
	entries := []domain.FAQEntry{
		{ID: "second", Keywords: []string{"same"}},
		{ID: "first", Keywords: []string{"same"}},
	}
	got := Match("same", entries)
	require.Len(t, got, 2)
	require.Equal(t, "second", got[0].Entry.ID)
	require.Equal(t, got[0].Score, got[1].Score)
}

func TestMatchZeroScoreExcluded(t *testing.T) {
	require.Empty(t, Match("звонок", testEntries))
}
