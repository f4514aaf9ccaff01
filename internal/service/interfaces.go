package service

import (
	"context"
	"io"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/youtube"
)

// CommentSource is the platform side of the pipeline: resolve a video
// and retrieve its comments. Implemented by youtube.Client.
type CommentSource interface {
	FetchComments(ctx context.Context, videoID string, opts youtube.FetchOptions) ([]domain.Comment, error)
	FetchReplies(ctx context.Context, parentIDs []string) ([]domain.Comment, error)
	VideoTitle(ctx context.Context, videoID string) (string, error)
}

// TextGenerator is a single-turn prompt-in, answer-out model call.
// Implemented by gemini.Client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Classifier assigns a sentiment label to each text. It is an injected
// capability so tests can swap in a deterministic double.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]domain.Sentiment, error)
}

// FetchRequest describes one fetch action from the UI.
type FetchRequest struct {
	Video          string
	MaxResults     int
	IncludeReplies bool
	Order          string
}

// FetchResult summarizes a completed fetch.
type FetchResult struct {
	VideoID      string
	VideoTitle   string
	CommentCount int
	// CacheHit is true when the session already held this video's
	// comments and no network call was made.
	CacheHit bool
}

// SuggestedQuestion is one canned question offered by the UI.
type SuggestedQuestion struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

// AnalysisServiceInterface defines the operations behind the HTTP
// surface. Used for dependency injection and mocking in tests.
type AnalysisServiceInterface interface {
	// CreateSession registers a new session and returns its id.
	CreateSession() string
	// Fetch resolves the video reference and loads its comments into
	// the session, reusing the cached collection when the reference is
	// unchanged.
	Fetch(ctx context.Context, sessionID string, req FetchRequest) (*FetchResult, error)
	// Stats aggregates the session's comment collection, running the
	// classifier on first use and caching its annotations.
	Stats(ctx context.Context, sessionID string) (*domain.Stats, error)
	// Ask forwards a question plus a bounded comment sample to the
	// model and records the exchange in the session history.
	Ask(ctx context.Context, sessionID, question string) (*domain.QAExchange, error)
	// History returns the session's question/answer history.
	History(sessionID string) ([]domain.QAExchange, error)
	// ClearHistory empties the session's question/answer history.
	ClearHistory(sessionID string) error
	// ExportCSV streams the session's comment collection as CSV and
	// returns the number of records written.
	ExportCSV(sessionID string, w io.Writer) (int, error)
	// SuggestedQuestions lists the canned questions for the UI.
	SuggestedQuestions() []SuggestedQuestion
}
