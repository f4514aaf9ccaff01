package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/logger"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/middleware"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/service"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/validator"
)

// AnalysisHandler handles the comment analysis HTTP surface.
type AnalysisHandler struct {
	analysisService service.AnalysisServiceInterface
	validator       *validator.Validator
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisServiceInterface, v *validator.Validator) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		validator:       v,
	}
}

// FetchRequest represents the body of a fetch request.
type FetchRequest struct {
	Video          string `json:"video"`
	MaxResults     int    `json:"max_results"`
	IncludeReplies bool   `json:"include_replies"`
	Order          string `json:"order"`
}

// FetchResponse summarizes a completed fetch in the API response.
type FetchResponse struct {
	VideoID      string `json:"video_id"`
	VideoTitle   string `json:"video_title"`
	CommentCount int    `json:"comment_count"`
	CacheHit     bool   `json:"cache_hit"`
}

// QuestionRequest represents the body of a question request.
type QuestionRequest struct {
	Question string `json:"question"`
}

// ExchangeResponse represents one question/answer pair in the API
// response.
type ExchangeResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	AskedAt  string `json:"asked_at"`
}

func toExchangeResponse(e domain.QAExchange) ExchangeResponse {
	return ExchangeResponse{
		Question: e.Question,
		Answer:   e.Answer,
		AskedAt:  e.AskedAt.Format(TimeFormat),
	}
}

// CreateSession handles POST /api/v1/sessions
func (h *AnalysisHandler) CreateSession(c *gin.Context) {
	id := h.analysisService.CreateSession()
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

// Fetch handles POST /api/v1/sessions/:id/fetch
func (h *AnalysisHandler) Fetch(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.validator.ValidateFetch(&validator.FetchInput{
		Video:      req.Video,
		MaxResults: req.MaxResults,
		Order:      req.Order,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	result, err := h.analysisService.Fetch(c.Request.Context(), c.Param("id"), service.FetchRequest{
		Video:          req.Video,
		MaxResults:     req.MaxResults,
		IncludeReplies: req.IncludeReplies,
		Order:          req.Order,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, FetchResponse{
		VideoID:      result.VideoID,
		VideoTitle:   result.VideoTitle,
		CommentCount: result.CommentCount,
		CacheHit:     result.CacheHit,
	})
}

// Stats handles GET /api/v1/sessions/:id/stats
func (h *AnalysisHandler) Stats(c *gin.Context) {
	stats, err := h.analysisService.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Ask handles POST /api/v1/sessions/:id/questions
func (h *AnalysisHandler) Ask(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.validator.ValidateQuestion(&validator.QuestionInput{Question: req.Question}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	exchange, err := h.analysisService.Ask(c.Request.Context(), c.Param("id"), req.Question)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toExchangeResponse(*exchange))
}

// History handles GET /api/v1/sessions/:id/questions
func (h *AnalysisHandler) History(c *gin.Context) {
	history, err := h.analysisService.History(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	responses := make([]ExchangeResponse, 0, len(history))
	for _, e := range history {
		responses = append(responses, toExchangeResponse(e))
	}

	c.JSON(http.StatusOK, gin.H{"history": responses})
}

// ClearHistory handles DELETE /api/v1/sessions/:id/questions
func (h *AnalysisHandler) ClearHistory(c *gin.Context) {
	if err := h.analysisService.ClearHistory(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Export handles GET /api/v1/sessions/:id/export
func (h *AnalysisHandler) Export(c *gin.Context) {
	sessionID := c.Param("id")
	requestID := middleware.GetRequestID(c)

	c.Header("Content-Type", "text/csv")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", `attachment; filename="comments.csv"`)

	count, err := h.analysisService.ExportCSV(sessionID, c.Writer)
	if err != nil {
		if count == 0 && !c.Writer.Written() {
			h.writeError(c, err)
			return
		}
		// Headers and part of the body are already out; all we can do
		// is log and cut the stream short.
		logger.Error("csv export aborted mid-stream",
			slog.String("request_id", requestID),
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return
	}

	logger.Debug("csv export completed",
		slog.String("request_id", requestID),
		slog.String("session_id", sessionID),
		slog.Int("records", count))
}

// SuggestedQuestions handles GET /api/v1/questions/suggested
func (h *AnalysisHandler) SuggestedQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.analysisService.SuggestedQuestions()})
}

// writeError maps a service error onto the HTTP status and stable error
// code the UI keys on.
func (h *AnalysisHandler) writeError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	c.JSON(status, gin.H{"error": code, "detail": err.Error()})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, "invalid_video_reference"
	case errors.Is(err, domain.ErrCommentsDisabled):
		return http.StatusForbidden, "comments_disabled"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "youtube_quota_exceeded"
	case errors.Is(err, domain.ErrLLMQuotaExceeded):
		return http.StatusTooManyRequests, "llm_quota_exceeded"
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway, "youtube_unavailable"
	case errors.Is(err, domain.ErrLLMUnavailable):
		return http.StatusBadGateway, "llm_unavailable"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, domain.ErrNoComments):
		return http.StatusConflict, "no_comments_loaded"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
