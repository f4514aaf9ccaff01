package youtube

import (
	"time"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

// Wire types mirror the subset of the Data API v3 payloads this client
// reads. Field names follow the API's JSON exactly.

type commentThreadsResponse struct {
	NextPageToken string          `json:"nextPageToken"`
	Items         []commentThread `json:"items"`
}

type commentThread struct {
	Snippet struct {
		TopLevelComment struct {
			ID      string         `json:"id"`
			Snippet commentSnippet `json:"snippet"`
		} `json:"topLevelComment"`
		TotalReplyCount int `json:"totalReplyCount"`
	} `json:"snippet"`
}

type commentsResponse struct {
	NextPageToken string        `json:"nextPageToken"`
	Items         []commentItem `json:"items"`
}

type commentItem struct {
	ID      string         `json:"id"`
	Snippet commentSnippet `json:"snippet"`
}

type commentSnippet struct {
	VideoID           string `json:"videoId"`
	AuthorDisplayName string `json:"authorDisplayName"`
	AuthorChannelID   struct {
		Value string `json:"value"`
	} `json:"authorChannelId"`
	TextDisplay  string    `json:"textDisplay"`
	TextOriginal string    `json:"textOriginal"`
	LikeCount    int       `json:"likeCount"`
	PublishedAt  time.Time `json:"publishedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// text prefers the rendered display text, falling back to the original.
func (s commentSnippet) text() string {
	if s.TextDisplay != "" {
		return s.TextDisplay
	}
	return s.TextOriginal
}

func (t commentThread) toComment(videoID string) domain.Comment {
	s := t.Snippet.TopLevelComment.Snippet
	return domain.Comment{
		ID:              t.Snippet.TopLevelComment.ID,
		VideoID:         videoID,
		Author:          s.AuthorDisplayName,
		AuthorChannelID: s.AuthorChannelID.Value,
		Text:            s.text(),
		LikeCount:       s.LikeCount,
		ReplyCount:      t.Snippet.TotalReplyCount,
		PublishedAt:     s.PublishedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (i commentItem) toReply(parentID string) domain.Comment {
	return domain.Comment{
		ID:              i.ID,
		VideoID:         i.Snippet.VideoID,
		ParentID:        parentID,
		IsReply:         true,
		Author:          i.Snippet.AuthorDisplayName,
		AuthorChannelID: i.Snippet.AuthorChannelID.Value,
		Text:            i.Snippet.text(),
		LikeCount:       i.Snippet.LikeCount,
		PublishedAt:     i.Snippet.PublishedAt,
		UpdatedAt:       i.Snippet.UpdatedAt,
	}
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
