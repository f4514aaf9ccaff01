package domain

import "time"

// Comment represents a single comment fetched from the platform.
// Comments are never mutated after creation; sentiment labels are kept
// in a separate annotation slice so the original record stays intact.
type Comment struct {
	ID              string    `json:"id"`
	VideoID         string    `json:"video_id"`
	ParentID        string    `json:"parent_id,omitempty"`
	IsReply         bool      `json:"is_reply"`
	Author          string    `json:"author"`
	AuthorChannelID string    `json:"author_channel_id,omitempty"`
	Text            string    `json:"text"`
	LikeCount       int       `json:"like_count"`
	ReplyCount      int       `json:"reply_count"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
