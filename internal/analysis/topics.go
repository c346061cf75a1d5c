package analysis

import (
	"fmt"
	"sort"
	"strings"

	"feedlens/domain/feedback"
	"feedlens/domain/lexicon"
)

// TopicCount is the mention count of one topic label.
type TopicCount struct {
	Label string
	Count int
}

// TopicResult holds per-topic mention counts in lexicon declaration
// order, plus the row total for percentages.
type TopicResult struct {
	Total  int
	Topics []TopicCount
}

// AnalyzeTopics marks a row as mentioning a topic when its lowercased
// text contains any of the topic's keywords as a substring. A row
// counts once per topic no matter how many keywords match, and may
// count toward several topics.
func AnalyzeTopics(t *feedback.Table, column string) TopicResult {
	r := TopicResult{Total: t.Len()}
	for _, topic := range lexicon.Topics {
		r.Topics = append(r.Topics, TopicCount{Label: topic.Label})
	}

	for _, row := range t.Rows {
		text := strings.ToLower(row[column].String())
		for i, topic := range lexicon.Topics {
			for _, keyword := range topic.Keywords {
				if strings.Contains(text, keyword) {
					r.Topics[i].Count++
					break
				}
			}
		}
	}
	return r
}

// Mentioned returns topics with at least one mention, descending by
// count; declaration order breaks ties.
func (r TopicResult) Mentioned() []TopicCount {
	mentioned := make([]TopicCount, 0, len(r.Topics))
	for _, tc := range r.Topics {
		if tc.Count > 0 {
			mentioned = append(mentioned, tc)
		}
	}
	sort.SliceStable(mentioned, func(i, j int) bool {
		return mentioned[i].Count > mentioned[j].Count
	})
	return mentioned
}

// Report formats the topic mention report.
func (r TopicResult) Report() string {
	lines := []string{
		"=== TOPIC ANALYSIS RESULTS ===",
		"",
		"Topics Mentioned:",
		strings.Repeat("-", 30),
	}
	for _, tc := range r.Mentioned() {
		lines = append(lines, fmt.Sprintf("%s: %d mentions (%.1f%%)", tc.Label, tc.Count, pct(tc.Count, r.Total)))
	}
	return strings.Join(lines, "\n")
}
