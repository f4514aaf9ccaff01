package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/mocks"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/service"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/session"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/youtube"
)

const testVideoID = "abc123XYZ_0"

type serviceFixture struct {
	svc        *service.AnalysisService
	sessions   *session.Store
	source     *mocks.MockCommentSource
	generator  *mocks.MockTextGenerator
	classifier *mocks.MockClassifier
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		sessions:   session.NewStore(time.Hour),
		source:     mocks.NewMockCommentSource(t),
		generator:  mocks.NewMockTextGenerator(t),
		classifier: mocks.NewMockClassifier(t),
	}
	f.svc = service.NewAnalysisService(f.sessions, f.source, f.generator, f.classifier, service.Options{
		DefaultMaxResults: 1000,
		MaxResultsCap:     5000,
		PromptMaxChars:    30000,
		TopKeywords:       25,
		TopComments:       10,
	})
	return f
}

func sampleComments() []domain.Comment {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Comment{
		{ID: "c1", VideoID: testVideoID, Author: "alice", Text: "great video", LikeCount: 3, PublishedAt: at},
		{ID: "c2", VideoID: testVideoID, Author: "bob", Text: "great content", LikeCount: 1, PublishedAt: at},
		{ID: "c3", VideoID: testVideoID, Author: "carol", Text: "bad video", PublishedAt: at},
	}
}

func TestAnalysisService_Fetch(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("Launch Day", nil)
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, youtube.FetchOptions{MaxResults: 1000}).
		Return(sampleComments(), nil)

	result, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{
		Video: "https://www.youtube.com/watch?v=" + testVideoID,
	})

	require.NoError(t, err)
	assert.Equal(t, testVideoID, result.VideoID)
	assert.Equal(t, "Launch Day", result.VideoTitle)
	assert.Equal(t, 3, result.CommentCount)
	assert.False(t, result.CacheHit)
}

func TestAnalysisService_Fetch_CacheHit(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("Launch Day", nil).Once()
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, mock.Anything).
		Return(sampleComments(), nil).
		Once()

	_, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: testVideoID})
	require.NoError(t, err)

	// The same reference in a different URL shape resolves to the same
	// video and must not touch the network again.
	result, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{
		Video: "https://youtu.be/" + testVideoID,
	})

	require.NoError(t, err)
	assert.True(t, result.CacheHit)
	assert.Equal(t, 3, result.CommentCount)
	assert.Equal(t, "Launch Day", result.VideoTitle)
}

func TestAnalysisService_Fetch_NewReferenceInvalidates(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()
	otherID := "def456UVW_1"

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("First", nil).Once()
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, mock.Anything).
		Return(sampleComments(), nil).
		Once()
	f.source.EXPECT().VideoTitle(mock.Anything, otherID).Return("Second", nil).Once()
	f.source.EXPECT().
		FetchComments(mock.Anything, otherID, mock.Anything).
		Return([]domain.Comment{{ID: "x1", VideoID: otherID, Text: "hello"}}, nil).
		Once()

	_, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: testVideoID})
	require.NoError(t, err)

	result, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: otherID})

	require.NoError(t, err)
	assert.False(t, result.CacheHit)
	assert.Equal(t, otherID, result.VideoID)
	assert.Equal(t, 1, result.CommentCount)
}

func TestAnalysisService_Fetch_InvalidReference(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	_, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: "not a video"})

	assert.True(t, errors.Is(err, domain.ErrInvalidReference))
}

func TestAnalysisService_Fetch_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Fetch(context.Background(), "missing", service.FetchRequest{Video: testVideoID})

	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestAnalysisService_Fetch_SourceError(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("Launch Day", nil)
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, mock.Anything).
		Return(nil, domain.ErrCommentsDisabled)

	_, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: testVideoID})
	assert.True(t, errors.Is(err, domain.ErrCommentsDisabled))

	// The failed fetch leaves no collection behind.
	_, err = f.svc.Stats(context.Background(), id)
	assert.True(t, errors.Is(err, domain.ErrNoComments))
}

func TestAnalysisService_Fetch_TitleLookupFailureIsTolerated(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("", domain.ErrNetwork)
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, mock.Anything).
		Return(sampleComments(), nil)

	result, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: testVideoID})

	require.NoError(t, err)
	assert.Equal(t, youtube.UnknownTitle, result.VideoTitle)
}

func TestAnalysisService_Fetch_IncludeReplies(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	parents := []domain.Comment{
		{ID: "c1", VideoID: testVideoID, Text: "first", ReplyCount: 2},
		{ID: "c2", VideoID: testVideoID, Text: "second"},
	}
	replies := []domain.Comment{
		{ID: "r1", VideoID: testVideoID, ParentID: "c1", IsReply: true, Text: "reply"},
	}

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("Launch Day", nil)
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, mock.Anything).
		Return(parents, nil)
	// Only parents that actually have replies are looked up.
	f.source.EXPECT().FetchReplies(mock.Anything, []string{"c1"}).Return(replies, nil)

	result, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{
		Video:          testVideoID,
		IncludeReplies: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.CommentCount)
}

func TestAnalysisService_Fetch_CapsMaxResults(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("Launch Day", nil)
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, youtube.FetchOptions{MaxResults: 5000}).
		Return(sampleComments(), nil)

	_, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{
		Video:      testVideoID,
		MaxResults: 999999,
	})

	require.NoError(t, err)
}

func TestAnalysisService_Stats(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	f.classifier.EXPECT().
		Classify(mock.Anything, []string{"great video", "great content", "bad video"}).
		Return([]domain.Sentiment{
			domain.SentimentPositive,
			domain.SentimentPositive,
			domain.SentimentNegative,
		}, nil).
		Once()

	stats, err := f.svc.Stats(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, testVideoID, stats.VideoID)
	assert.Equal(t, "Launch Day", stats.VideoTitle)
	assert.Equal(t, 2, stats.Sentiment.Positive)
	assert.Equal(t, 1, stats.Sentiment.Negative)
	assert.Equal(t, 0, stats.Sentiment.Neutral)
	assert.Equal(t, 3, stats.Engagement.TotalComments)

	keywords := make(map[string]int, len(stats.Keywords))
	for _, wc := range stats.Keywords {
		keywords[wc.Word] = wc.Count
	}
	assert.Equal(t, map[string]int{"great": 2, "video": 2, "content": 1, "bad": 1}, keywords)
}

func TestAnalysisService_Stats_ClassifiesOnce(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	f.classifier.EXPECT().
		Classify(mock.Anything, mock.Anything).
		Return([]domain.Sentiment{
			domain.SentimentPositive,
			domain.SentimentPositive,
			domain.SentimentNegative,
		}, nil).
		Once()

	_, err := f.svc.Stats(context.Background(), id)
	require.NoError(t, err)

	// Second call serves the cached annotations.
	stats, err := f.svc.Stats(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Sentiment.Positive)
}

func TestAnalysisService_Stats_NoComments(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	_, err := f.svc.Stats(context.Background(), id)

	assert.True(t, errors.Is(err, domain.ErrNoComments))
}

func TestAnalysisService_Stats_ClassifierError(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	f.classifier.EXPECT().
		Classify(mock.Anything, mock.Anything).
		Return(nil, domain.ErrLLMQuotaExceeded)

	_, err := f.svc.Stats(context.Background(), id)

	assert.True(t, errors.Is(err, domain.ErrLLMQuotaExceeded))
}

func TestAnalysisService_Ask(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	var prompt string
	f.generator.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return "Mostly positive.", nil
		})

	exchange, err := f.svc.Ask(context.Background(), id, "How do viewers feel?")

	require.NoError(t, err)
	assert.Equal(t, "How do viewers feel?", exchange.Question)
	assert.Equal(t, "Mostly positive.", exchange.Answer)
	assert.False(t, exchange.AskedAt.IsZero())
	assert.Contains(t, prompt, "How do viewers feel?")
	assert.Contains(t, prompt, "great video")

	history, err := f.svc.History(id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Mostly positive.", history[0].Answer)
}

func TestAnalysisService_Ask_WithoutComments(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	var prompt string
	f.generator.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return "No comments to analyze.", nil
		})

	exchange, err := f.svc.Ask(context.Background(), id, "Is anyone watching?")

	require.NoError(t, err)
	assert.Equal(t, "No comments to analyze.", exchange.Answer)
	assert.Contains(t, prompt, "Is anyone watching?")
}

func TestAnalysisService_Ask_GeneratorError(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	f.generator.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		Return("", domain.ErrLLMUnavailable)

	_, err := f.svc.Ask(context.Background(), id, "How do viewers feel?")
	assert.True(t, errors.Is(err, domain.ErrLLMUnavailable))

	history, err := f.svc.History(id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAnalysisService_ClearHistory(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	f.generator.EXPECT().
		GenerateContent(mock.Anything, mock.Anything).
		Return("Answer.", nil)

	_, err := f.svc.Ask(context.Background(), id, "q")
	require.NoError(t, err)

	require.NoError(t, f.svc.ClearHistory(id))

	history, err := f.svc.History(id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAnalysisService_ExportCSV(t *testing.T) {
	f := newFixture(t)
	id := fetchSample(t, f)

	var buf bytes.Buffer
	written, err := f.svc.ExportCSV(id, &buf)

	require.NoError(t, err)
	assert.Equal(t, 3, written)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "video_id,comment_id,parent_id,is_reply,video_title")
	assert.Contains(t, lines[1], "c1")
	assert.Contains(t, lines[1], "Launch Day")
	assert.Contains(t, lines[1], "great video")
}

func TestAnalysisService_ExportCSV_NoComments(t *testing.T) {
	f := newFixture(t)
	id := f.svc.CreateSession()

	var buf bytes.Buffer
	_, err := f.svc.ExportCSV(id, &buf)

	assert.True(t, errors.Is(err, domain.ErrNoComments))
	assert.Zero(t, buf.Len())
}

func TestAnalysisService_SuggestedQuestions(t *testing.T) {
	f := newFixture(t)

	suggested := f.svc.SuggestedQuestions()

	require.Len(t, suggested, 3)
	for _, s := range suggested {
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.Question)
	}
}

// fetchSample creates a session and loads the sample collection into it.
func fetchSample(t *testing.T, f *serviceFixture) string {
	t.Helper()

	id := f.svc.CreateSession()
	f.source.EXPECT().VideoTitle(mock.Anything, testVideoID).Return("Launch Day", nil).Once()
	f.source.EXPECT().
		FetchComments(mock.Anything, testVideoID, mock.Anything).
		Return(sampleComments(), nil).
		Once()

	_, err := f.svc.Fetch(context.Background(), id, service.FetchRequest{Video: testVideoID})
	require.NoError(t, err)
	return id
}
