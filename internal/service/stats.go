package service

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

// stopwords are excluded from the keyword frequency table.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a an and are as at be been but by can did do does for from had
		has have he her him his how i if in into is it its just me my
		no not of on or our she so than that the their them then there
		they this to too us very was we were what when where which who
		why will with you your
	`) {
		stopwords[w] = struct{}{}
	}
}

// tokenize lower-cases s and splits it on anything that is not a
// letter or digit, which also strips punctuation.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// WordFrequencies builds the keyword table over the comment texts:
// case-insensitive, punctuation stripped, stopwords removed. Entries
// are sorted by count descending, ties broken alphabetically so the
// result is deterministic. topN <= 0 returns the whole table.
func WordFrequencies(comments []domain.Comment, topN int) []domain.WordCount {
	counts := make(map[string]int)
	for _, c := range comments {
		for _, word := range tokenize(c.Text) {
			if _, skip := stopwords[word]; skip {
				continue
			}
			counts[word]++
		}
	}

	table := make([]domain.WordCount, 0, len(counts))
	for word, count := range counts {
		table = append(table, domain.WordCount{Word: word, Count: count})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].Word < table[j].Word
	})

	if topN > 0 && len(table) > topN {
		table = table[:topN]
	}
	return table
}

// CountSentiments aggregates classifier labels.
func CountSentiments(labels []domain.Sentiment) domain.SentimentCounts {
	var counts domain.SentimentCounts
	for _, l := range labels {
		switch l {
		case domain.SentimentPositive:
			counts.Positive++
		case domain.SentimentNeutral:
			counts.Neutral++
		case domain.SentimentNegative:
			counts.Negative++
		default:
			counts.Unknown++
		}
	}
	return counts
}

// SummarizeEngagement computes like/reply summaries: totals, mean,
// the topN comments by like count, and per-day comment counts for the
// activity chart.
func SummarizeEngagement(comments []domain.Comment, topN int) domain.EngagementSummary {
	summary := domain.EngagementSummary{TotalComments: len(comments)}
	if len(comments) == 0 {
		return summary
	}

	perDay := make(map[string]int)
	for _, c := range comments {
		summary.TotalLikes += c.LikeCount
		summary.TotalReplies += c.ReplyCount
		if c.LikeCount > summary.MaxLikes {
			summary.MaxLikes = c.LikeCount
		}
		if !c.PublishedAt.IsZero() {
			perDay[c.PublishedAt.UTC().Format("2006-01-02")]++
		}
	}
	summary.MeanLikes = float64(summary.TotalLikes) / float64(len(comments))

	top := make([]domain.Comment, len(comments))
	copy(top, comments)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].LikeCount > top[j].LikeCount
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}
	summary.TopByLikes = top

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		summary.PerDay = append(summary.PerDay, domain.DayCount{Day: day, Count: perDay[day]})
	}

	return summary
}
