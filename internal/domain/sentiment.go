package domain

import "strings"

// Sentiment is the classification label assigned to a comment by the
// external model. Unknown is used when the model returns something
// that cannot be parsed as one of the three labels.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentUnknown  Sentiment = "unknown"
)

// ValidSentiments contains the labels the classifier is asked to emit.
var ValidSentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// ParseSentiment normalizes a raw model label into a Sentiment.
func ParseSentiment(raw string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive":
		return SentimentPositive
	case "neutral":
		return SentimentNeutral
	case "negative":
		return SentimentNegative
	default:
		return SentimentUnknown
	}
}

// IsValid reports whether s is one of the three classifier labels.
func (s Sentiment) IsValid() bool {
	for _, v := range ValidSentiments {
		if s == v {
			return true
		}
	}
	return false
}
