package domain

import "time"

// SentimentCounts aggregates classifier labels over a comment set.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Unknown  int `json:"unknown,omitempty"`
}

// Total returns the number of classified comments.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative + c.Unknown
}

// WordCount is one entry of the keyword frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// DayCount is the number of comments published on a single day.
// Days are UTC dates in YYYY-MM-DD form, sorted ascending.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// EngagementSummary holds numeric summaries of like/reply activity.
type EngagementSummary struct {
	TotalComments int        `json:"total_comments"`
	TotalLikes    int        `json:"total_likes"`
	MeanLikes     float64    `json:"mean_likes"`
	MaxLikes      int        `json:"max_likes"`
	TotalReplies  int        `json:"total_replies"`
	TopByLikes    []Comment  `json:"top_by_likes"`
	PerDay        []DayCount `json:"per_day"`
}

// Stats is the full aggregation result for one fetched collection.
type Stats struct {
	VideoID    string            `json:"video_id"`
	VideoTitle string            `json:"video_title,omitempty"`
	Sentiment  SentimentCounts   `json:"sentiment"`
	Keywords   []WordCount       `json:"keywords"`
	Engagement EngagementSummary `json:"engagement"`
}

// QAExchange is one question/answer pair kept in the session history.
type QAExchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}
