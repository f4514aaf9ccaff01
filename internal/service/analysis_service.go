package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/logger"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/metrics"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/session"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/youtube"
)

// Options holds the tunable limits of the analysis pipeline.
type Options struct {
	DefaultMaxResults int
	MaxResultsCap     int
	PromptMaxChars    int
	TopKeywords       int
	TopComments       int
}

// AnalysisService orchestrates one synchronous pipeline per user
// action: resolve, fetch, aggregate, or answer. Session state is the
// only thing it remembers between actions.
type AnalysisService struct {
	sessions   *session.Store
	source     CommentSource
	generator  TextGenerator
	classifier Classifier
	opts       Options
}

// NewAnalysisService creates an AnalysisService.
func NewAnalysisService(
	sessions *session.Store,
	source CommentSource,
	generator TextGenerator,
	classifier Classifier,
	opts Options,
) *AnalysisService {
	if opts.DefaultMaxResults < 1 {
		opts.DefaultMaxResults = 1000
	}
	if opts.MaxResultsCap < 1 {
		opts.MaxResultsCap = 5000
	}
	if opts.PromptMaxChars < 1 {
		opts.PromptMaxChars = 30000
	}
	return &AnalysisService{
		sessions:   sessions,
		source:     source,
		generator:  generator,
		classifier: classifier,
		opts:       opts,
	}
}

// CreateSession registers a new session and returns its id.
func (s *AnalysisService) CreateSession() string {
	return s.sessions.Create()
}

// Fetch resolves req.Video and loads its comments into the session.
// Re-fetching the reference already cached in the session performs no
// network call; a different reference invalidates the cached
// collection first.
func (s *AnalysisService) Fetch(ctx context.Context, sessionID string, req FetchRequest) (*FetchResult, error) {
	timer := metrics.NewTimer()

	videoID, err := youtube.ExtractVideoID(req.Video)
	if err != nil {
		metrics.ObserveFetch("invalid_reference", timer.Seconds(), 0)
		return nil, err
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.opts.DefaultMaxResults
	}
	if maxResults > s.opts.MaxResultsCap {
		maxResults = s.opts.MaxResultsCap
	}

	var cached *FetchResult
	err = s.sessions.Update(sessionID, func(sess *session.Session) error {
		if sess.VideoID == videoID && sess.State.HasComments() {
			cached = &FetchResult{
				VideoID:      videoID,
				VideoTitle:   sess.VideoTitle,
				CommentCount: len(sess.Comments),
				CacheHit:     true,
			}
			return nil
		}
		sess.ResetVideo()
		sess.VideoID = videoID
		sess.State = domain.SessionStateFetching
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cached != nil {
		metrics.ObserveFetch("cache_hit", timer.Seconds(), 0)
		return cached, nil
	}

	log := logger.WithSessionID(sessionID).With(slog.String("video_id", videoID))

	title, err := s.source.VideoTitle(ctx, videoID)
	if err != nil {
		// A missing title never fails the fetch, matching the UI's
		// tolerance for videos it cannot look up.
		log.Warn("video title lookup failed", slog.String("error", err.Error()))
		title = youtube.UnknownTitle
	}

	comments, err := s.source.FetchComments(ctx, videoID, youtube.FetchOptions{
		MaxResults: maxResults,
		Order:      req.Order,
	})
	if err != nil {
		s.failFetch(sessionID)
		metrics.ObserveFetch(fetchResultLabel(err), timer.Seconds(), 0)
		return nil, err
	}

	if req.IncludeReplies {
		parents := make([]string, 0, len(comments))
		for _, c := range comments {
			if c.ReplyCount > 0 {
				parents = append(parents, c.ID)
			}
		}
		replies, err := s.source.FetchReplies(ctx, parents)
		if err != nil {
			s.failFetch(sessionID)
			metrics.ObserveFetch(fetchResultLabel(err), timer.Seconds(), 0)
			return nil, err
		}
		comments = append(comments, replies...)
	}

	err = s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.VideoID = videoID
		sess.VideoTitle = title
		sess.Comments = comments
		sess.Sentiments = nil
		sess.State = domain.SessionStateReady
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveFetch("success", timer.Seconds(), len(comments))
	log.Info("comments fetched",
		slog.Int("count", len(comments)),
		slog.String("title", title))

	return &FetchResult{
		VideoID:      videoID,
		VideoTitle:   title,
		CommentCount: len(comments),
	}, nil
}

// failFetch marks the session's fetch as failed; the session itself
// stays usable so the user can retry.
func (s *AnalysisService) failFetch(sessionID string) {
	_ = s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.State = domain.SessionStateFetchFailed
		return nil
	})
}

// fetchResultLabel maps a fetch error to a metrics label.
func fetchResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrCommentsDisabled):
		return "comments_disabled"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, domain.ErrInvalidReference):
		return "invalid_reference"
	default:
		return "network_error"
	}
}

// Stats aggregates the session's comment collection. The classifier
// runs once per fetched collection; its annotations are cached on the
// session alongside (not inside) the untouched comment records.
func (s *AnalysisService) Stats(ctx context.Context, sessionID string) (*domain.Stats, error) {
	var (
		comments   []domain.Comment
		sentiments []domain.Sentiment
		videoID    string
		title      string
	)
	err := s.sessions.View(sessionID, func(sess *session.Session) error {
		if !sess.State.HasComments() {
			return domain.ErrNoComments
		}
		comments = sess.Comments
		sentiments = sess.Sentiments
		videoID = sess.VideoID
		title = sess.VideoTitle
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sentiments == nil && len(comments) > 0 {
		texts := make([]string, len(comments))
		for i, c := range comments {
			texts[i] = c.Text
		}

		timer := metrics.NewTimer()
		labels, err := s.classifier.Classify(ctx, texts)
		if err != nil {
			metrics.ObserveLLMRequest("classify", "error", timer.Seconds())
			return nil, err
		}
		metrics.ObserveLLMRequest("classify", "success", timer.Seconds())
		sentiments = labels

		// Cache the annotations unless the collection changed underneath.
		_ = s.sessions.Update(sessionID, func(sess *session.Session) error {
			if sess.VideoID == videoID && len(sess.Comments) == len(comments) {
				sess.Sentiments = labels
			}
			return nil
		})
	}

	return &domain.Stats{
		VideoID:    videoID,
		VideoTitle: title,
		Sentiment:  CountSentiments(sentiments),
		Keywords:   WordFrequencies(comments, s.opts.TopKeywords),
		Engagement: SummarizeEngagement(comments, s.opts.TopComments),
	}, nil
}

// Ask forwards a question plus a bounded comment sample to the model.
// An empty collection still issues a prompt carrying the question
// alone. The exchange is appended to the session history on success.
func (s *AnalysisService) Ask(ctx context.Context, sessionID, question string) (*domain.QAExchange, error) {
	var comments []domain.Comment
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		comments = sess.Comments
		sess.State = domain.SessionStateAnswering
		return nil
	})
	if err != nil {
		return nil, err
	}

	prompt, truncated := BuildQuestionPrompt(question, comments, s.opts.PromptMaxChars)
	if truncated {
		logger.WithSessionID(sessionID).Debug("comment sample truncated for prompt",
			slog.Int("comments", len(comments)))
	}

	timer := metrics.NewTimer()
	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		metrics.ObserveLLMRequest("question", "error", timer.Seconds())
		_ = s.sessions.Update(sessionID, func(sess *session.Session) error {
			sess.State = domain.SessionStateAnswerFailed
			return nil
		})
		return nil, err
	}
	metrics.ObserveLLMRequest("question", "success", timer.Seconds())

	exchange := domain.QAExchange{
		Question: question,
		Answer:   answer,
		AskedAt:  time.Now(),
	}
	err = s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.History = append(sess.History, exchange)
		if len(sess.Comments) > 0 {
			sess.State = domain.SessionStateReady
		} else {
			sess.State = domain.SessionStateIdle
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &exchange, nil
}

// History returns the session's question/answer history.
func (s *AnalysisService) History(sessionID string) ([]domain.QAExchange, error) {
	var history []domain.QAExchange
	err := s.sessions.View(sessionID, func(sess *session.Session) error {
		history = append(history, sess.History...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// ClearHistory empties the session's question/answer history.
func (s *AnalysisService) ClearHistory(sessionID string) error {
	return s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.History = nil
		return nil
	})
}

// csvHeader mirrors the columns of the downloadable comment export.
var csvHeader = []string{
	"video_id", "comment_id", "parent_id", "is_reply", "video_title",
	"author", "author_channel_id", "comment", "like_count",
	"reply_count", "published_at", "updated_at",
}

// ExportCSV streams the session's comment collection as CSV and
// returns the number of records written.
func (s *AnalysisService) ExportCSV(sessionID string, w io.Writer) (int, error) {
	var (
		comments []domain.Comment
		title    string
	)
	err := s.sessions.View(sessionID, func(sess *session.Session) error {
		if !sess.State.HasComments() {
			return domain.ErrNoComments
		}
		comments = sess.Comments
		title = sess.VideoTitle
		return nil
	})
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}

	written := 0
	for _, c := range comments {
		record := []string{
			c.VideoID,
			c.ID,
			c.ParentID,
			strconv.FormatBool(c.IsReply),
			title,
			c.Author,
			c.AuthorChannelID,
			c.Text,
			strconv.Itoa(c.LikeCount),
			strconv.Itoa(c.ReplyCount),
			c.PublishedAt.Format(time.RFC3339),
			c.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return written, fmt.Errorf("writing csv record: %w", err)
		}
		written++
	}

	cw.Flush()
	return written, cw.Error()
}

// SuggestedQuestions lists the canned questions offered by the UI.
func (s *AnalysisService) SuggestedQuestions() []SuggestedQuestion {
	return []SuggestedQuestion{
		{
			Label:    "How do viewers feel?",
			Question: "Analyze how viewers feel about this video overall (positive / negative / neutral), with short example comments supporting the conclusion.",
		},
		{
			Label:    "What do people talk about most?",
			Question: "Across all the comments, which topics do viewers bring up most often, and is the tone around each positive or negative?",
		},
		{
			Label:    "Suggestions and criticism",
			Question: "Summarize the suggestions and criticism viewers raise about this video, ranked by how often they come up.",
		},
	}
}
