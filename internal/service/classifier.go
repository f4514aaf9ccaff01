package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/logger"
	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/metrics"
)

// LLMClassifier classifies comment sentiment by prompting the text
// generator one batch at a time and parsing a JSON array of labels
// back out of the answer.
type LLMClassifier struct {
	generator TextGenerator
	batchSize int
}

// NewLLMClassifier creates an LLMClassifier. batchSize bounds how many
// comments go into a single model call.
func NewLLMClassifier(generator TextGenerator, batchSize int) *LLMClassifier {
	if batchSize < 1 {
		batchSize = 50
	}
	return &LLMClassifier{generator: generator, batchSize: batchSize}
}

// Classify labels every text. Model transport errors propagate so the
// caller can surface a retryable condition; unparsable answers degrade
// to SentimentUnknown for the affected entries instead of failing.
func (c *LLMClassifier) Classify(ctx context.Context, texts []string) ([]domain.Sentiment, error) {
	labels := make([]domain.Sentiment, 0, len(texts))

	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		answer, err := c.generator.GenerateContent(ctx, buildClassifyPrompt(batch))
		if err != nil {
			metrics.ClassifyBatches.WithLabelValues("error").Inc()
			return nil, err
		}
		metrics.ClassifyBatches.WithLabelValues("success").Inc()

		labels = append(labels, parseLabels(answer, len(batch))...)
	}

	return labels, nil
}

// parseLabels extracts want labels from a model answer. The answer may
// wrap the JSON array in a markdown fence or surrounding prose; short
// or unreadable answers fill the remainder with SentimentUnknown.
func parseLabels(answer string, want int) []domain.Sentiment {
	labels := make([]domain.Sentiment, want)
	for i := range labels {
		labels[i] = domain.SentimentUnknown
	}

	raw := extractJSONArray(answer)
	if raw == "" {
		logger.Warn("classifier answer contained no JSON array")
		return labels
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logger.Warn("classifier answer was not a JSON string array")
		return labels
	}

	for i := 0; i < want && i < len(parsed); i++ {
		labels[i] = domain.ParseSentiment(parsed[i])
	}
	return labels
}

// extractJSONArray returns the first bracketed span of s, or "".
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
