package service

import (
	"fmt"
	"strings"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

const questionPromptHeader = `You are an assistant that analyzes YouTube viewer comments, qualitatively and quantitatively, in a concise and structured way.`

const questionPromptGuidelines = `[Guidelines]
1) Answer the question directly, using clearly separated bullet points
2) Quote short, anonymized example comments that support each conclusion
3) If positive, negative and neutral views are all present, give approximate percentages
4) If there are actionable suggestions, rank the top 1-3 by priority`

const truncationNote = `[Note] The comment list was truncated to fit within the model's context limit.`

// BuildQuestionPrompt assembles the prompt for a user question over a
// comment collection. The sample is deterministic: whole comment texts
// in fetch order, stopping before the sample would exceed maxChars.
// The second return value reports whether any comments were dropped.
// An empty collection still yields a prompt carrying the question
// alone.
func BuildQuestionPrompt(question string, comments []domain.Comment, maxChars int) (string, bool) {
	var sample strings.Builder
	truncated := false

	for i, c := range comments {
		need := len(c.Text)
		if i > 0 {
			need++ // newline separator
		}
		if maxChars > 0 && sample.Len()+need > maxChars {
			truncated = true
			break
		}
		if i > 0 {
			sample.WriteByte('\n')
		}
		sample.WriteString(c.Text)
	}

	var b strings.Builder
	b.WriteString(questionPromptHeader)
	b.WriteString("\n\n[User question]\n")
	b.WriteString(question)
	b.WriteString("\n\n[Viewer comments]\n")
	b.WriteString(sample.String())
	b.WriteString("\n\n")
	b.WriteString(questionPromptGuidelines)
	if truncated {
		b.WriteString("\n\n")
		b.WriteString(truncationNote)
	}

	return b.String(), truncated
}

const classifyPromptHeader = `You are an assistant that classifies the sentiment of YouTube comments.

For each comment in the numbered list below, decide whether its overall sentiment is positive, neutral or negative.

You must respond ONLY with a JSON array of lowercase labels, one per comment, in the same order, for example: ["positive","negative","neutral"]`

// buildClassifyPrompt renders one classification batch.
func buildClassifyPrompt(texts []string) string {
	var b strings.Builder
	b.WriteString(classifyPromptHeader)
	b.WriteString("\n\n[Comments]\n")
	for i, t := range texts {
		// Keep each entry on one line so the numbering stays readable.
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ReplaceAll(t, "\n", " "))
	}
	return b.String()
}
