package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

func TestWordFrequencies(t *testing.T) {
	comments := []domain.Comment{
		{Text: "great video"},
		{Text: "great content"},
		{Text: "bad video"},
	}

	table := WordFrequencies(comments, 0)

	want := map[string]int{"great": 2, "video": 2, "content": 1, "bad": 1}
	require.Len(t, table, len(want))
	for _, wc := range table {
		assert.Equal(t, want[wc.Word], wc.Count, "word %q", wc.Word)
	}
}

func TestWordFrequencies_CaseAndPunctuation(t *testing.T) {
	comments := []domain.Comment{
		{Text: "Great VIDEO!!!"},
		{Text: "great, video."},
	}

	table := WordFrequencies(comments, 0)

	require.Len(t, table, 2)
	assert.Equal(t, domain.WordCount{Word: "great", Count: 2}, table[0])
	assert.Equal(t, domain.WordCount{Word: "video", Count: 2}, table[1])
}

func TestWordFrequencies_RemovesStopwords(t *testing.T) {
	comments := []domain.Comment{
		{Text: "this is the best video of all and i love it"},
	}

	table := WordFrequencies(comments, 0)

	for _, wc := range table {
		assert.NotContains(t, []string{"this", "is", "the", "of", "and", "i", "it"}, wc.Word)
	}
	words := make([]string, len(table))
	for i, wc := range table {
		words[i] = wc.Word
	}
	assert.ElementsMatch(t, []string{"best", "video", "all", "love"}, words)
}

func TestWordFrequencies_TopNAndTieBreak(t *testing.T) {
	comments := []domain.Comment{
		{Text: "zebra apple zebra apple banana"},
	}

	table := WordFrequencies(comments, 2)

	require.Len(t, table, 2)
	// apple and zebra tie at 2; alphabetical order breaks the tie.
	assert.Equal(t, "apple", table[0].Word)
	assert.Equal(t, "zebra", table[1].Word)
}

func TestCountSentiments(t *testing.T) {
	labels := []domain.Sentiment{
		domain.SentimentPositive,
		domain.SentimentPositive,
		domain.SentimentNegative,
	}

	counts := CountSentiments(labels)

	assert.Equal(t, 2, counts.Positive)
	assert.Equal(t, 1, counts.Negative)
	assert.Equal(t, 0, counts.Neutral)
	assert.Equal(t, 0, counts.Unknown)
}

func TestCountSentiments_UnknownBucket(t *testing.T) {
	counts := CountSentiments([]domain.Sentiment{
		domain.SentimentUnknown,
		domain.SentimentNeutral,
		domain.Sentiment("garbage"),
	})

	assert.Equal(t, 1, counts.Neutral)
	assert.Equal(t, 2, counts.Unknown)
}

func TestSummarizeEngagement(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	comments := []domain.Comment{
		{ID: "c1", LikeCount: 10, ReplyCount: 2, PublishedAt: day1},
		{ID: "c2", LikeCount: 50, ReplyCount: 0, PublishedAt: day1},
		{ID: "c3", LikeCount: 0, ReplyCount: 1, PublishedAt: day2},
	}

	summary := SummarizeEngagement(comments, 2)

	assert.Equal(t, 3, summary.TotalComments)
	assert.Equal(t, 60, summary.TotalLikes)
	assert.Equal(t, 3, summary.TotalReplies)
	assert.Equal(t, 50, summary.MaxLikes)
	assert.InDelta(t, 20.0, summary.MeanLikes, 0.001)

	require.Len(t, summary.TopByLikes, 2)
	assert.Equal(t, "c2", summary.TopByLikes[0].ID)
	assert.Equal(t, "c1", summary.TopByLikes[1].ID)

	require.Len(t, summary.PerDay, 2)
	assert.Equal(t, domain.DayCount{Day: "2024-05-01", Count: 2}, summary.PerDay[0])
	assert.Equal(t, domain.DayCount{Day: "2024-05-02", Count: 1}, summary.PerDay[1])
}

func TestSummarizeEngagement_Empty(t *testing.T) {
	summary := SummarizeEngagement(nil, 5)

	assert.Equal(t, 0, summary.TotalComments)
	assert.Equal(t, 0.0, summary.MeanLikes)
	assert.Empty(t, summary.TopByLikes)
	assert.Empty(t, summary.PerDay)
}

// Top-by-likes must not reorder the session's collection itself.
func TestSummarizeEngagement_DoesNotMutateInput(t *testing.T) {
	comments := []domain.Comment{
		{ID: "c1", LikeCount: 1},
		{ID: "c2", LikeCount: 99},
	}

	SummarizeEngagement(comments, 1)

	assert.Equal(t, "c1", comments[0].ID)
	assert.Equal(t, "c2", comments[1].ID)
}
