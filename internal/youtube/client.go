// Package youtube is a thin client for the YouTube Data API v3
// surface this application consumes: comment threads, comment replies,
// and video snippets. It paginates via the API's continuation tokens
// and maps platform error reasons onto the domain error taxonomy.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

const (
	// UnknownTitle is returned for videos whose snippet lookup fails
	// or returns no items.
	UnknownTitle = "Unknown Title"

	// OrderTime sorts comments newest first; OrderRelevance uses the
	// platform's relevance ranking.
	OrderTime      = "time"
	OrderRelevance = "relevance"
)

// Config configures a Client.
type Config struct {
	APIKey string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
	Timeout time.Duration
	// PageSize is the per-page maxResults, 1..100.
	PageSize int
	// RateLimit is the outbound requests-per-second budget.
	RateLimit float64
}

// Client calls the YouTube Data API.
type Client struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client from cfg, filling unset fields with
// production defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 100
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// FetchOptions bound and order a comment fetch.
type FetchOptions struct {
	// MaxResults caps the total number of comments returned across
	// pages; 0 means no cap.
	MaxResults int
	// Order is OrderTime or OrderRelevance. Empty defaults to OrderTime.
	Order string
}

// FetchComments retrieves top-level comments for videoID, following
// continuation tokens until MaxResults is reached or the API reports
// no further pages. Inter-page order is preserved; a page with zero
// items but a continuation token is not an error. No retries are
// attempted: a failure surfaces once to the caller.
func (c *Client) FetchComments(ctx context.Context, videoID string, opts FetchOptions) ([]domain.Comment, error) {
	if !IsVideoID(videoID) {
		return nil, domain.ErrInvalidReference
	}

	order := opts.Order
	if order == "" {
		order = OrderTime
	}

	var comments []domain.Comment
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("part", "snippet")
		params.Set("videoId", videoID)
		params.Set("maxResults", strconv.Itoa(c.pageSize))
		params.Set("textFormat", "plainText")
		params.Set("order", order)
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var page commentThreadsResponse
		if err := c.get(ctx, "/commentThreads", params, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			comments = append(comments, item.toComment(videoID))
			if opts.MaxResults > 0 && len(comments) == opts.MaxResults {
				return comments, nil
			}
		}

		if page.NextPageToken == "" {
			return comments, nil
		}
		pageToken = page.NextPageToken
	}
}

// FetchReplies retrieves every reply for the given parent comment ids,
// concatenated in parent order then page order.
func (c *Client) FetchReplies(ctx context.Context, parentIDs []string) ([]domain.Comment, error) {
	var replies []domain.Comment

	for _, parentID := range parentIDs {
		pageToken := ""
		for {
			params := url.Values{}
			params.Set("part", "snippet")
			params.Set("parentId", parentID)
			params.Set("maxResults", strconv.Itoa(c.pageSize))
			params.Set("textFormat", "plainText")
			if pageToken != "" {
				params.Set("pageToken", pageToken)
			}

			var page commentsResponse
			if err := c.get(ctx, "/comments", params, &page); err != nil {
				return nil, err
			}

			for _, item := range page.Items {
				replies = append(replies, item.toReply(parentID))
			}

			if page.NextPageToken == "" {
				break
			}
			pageToken = page.NextPageToken
		}
	}

	return replies, nil
}

// VideoTitle looks up the video's snippet title. A video with no items
// in the response yields UnknownTitle without an error.
func (c *Client) VideoTitle(ctx context.Context, videoID string) (string, error) {
	if !IsVideoID(videoID) {
		return "", domain.ErrInvalidReference
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", videoID)

	var resp videosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return UnknownTitle, nil
	}
	return resp.Items[0].Snippet.Title, nil
}

// get performs one rate-limited API request and decodes the response,
// mapping platform errors onto the domain taxonomy.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return mapAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrNetwork, err)
	}
	return nil
}

// mapAPIError translates a non-200 platform response into a sentinel
// error. Reasons take priority over status codes because the platform
// reports both quota and disabled-comments conditions as 403.
func mapAPIError(status int, body []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		for _, e := range apiErr.Error.Errors {
			switch e.Reason {
			case "commentsDisabled":
				return domain.ErrCommentsDisabled
			case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded", "userRateLimitExceeded":
				return domain.ErrQuotaExceeded
			}
		}
		if apiErr.Error.Message != "" {
			if status == http.StatusTooManyRequests {
				return fmt.Errorf("%w: %s", domain.ErrQuotaExceeded, apiErr.Error.Message)
			}
			return fmt.Errorf("%w: status %d: %s", domain.ErrNetwork, status, apiErr.Error.Message)
		}
	}

	if status == http.StatusTooManyRequests {
		return fmt.Errorf("%w: status %d", domain.ErrQuotaExceeded, status)
	}
	return fmt.Errorf("%w: unexpected status %d", domain.ErrNetwork, status)
}
