package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"feedlens/domain/feedback"
	"feedlens/domain/lexicon"

	"github.com/montanaflynn/stats"
)

const topThemeCount = 10

// SummaryResult is the composite one-pass summary: row count, length
// statistics, top themes and a quick sentiment overview.
type SummaryResult struct {
	Total     int
	AvgLength float64
	Lengths   []int
	Themes    []KeywordCount
	Positive  int
	Negative  int
}

// AnalyzeSummary computes the summary in a single pass over the table.
// Themes use the small summary stop-word set; the sentiment counts use
// the same classification rule as the sentiment analyzer, with neutral
// derived as total minus the two rather than re-counted.
func AnalyzeSummary(t *feedback.Table, column string) SummaryResult {
	r := SummaryResult{Total: t.Len()}

	themeCounts := make(map[string]int)
	var themeOrder []string

	for _, row := range t.Rows {
		text := row[column].String()
		r.Lengths = append(r.Lengths, utf8.RuneCountInString(text))

		lower := strings.ToLower(text)
		for _, word := range Tokens(lower) {
			if lexicon.IsSummaryStopWord(word) || len(word) <= 2 {
				continue
			}
			if _, seen := themeCounts[word]; !seen {
				themeOrder = append(themeOrder, word)
			}
			themeCounts[word]++
		}

		pos, neg := markerHits(lower)
		switch {
		case pos > neg:
			r.Positive++
		case neg > pos:
			r.Negative++
		}
	}

	r.AvgLength = meanLength(r.Lengths)
	r.Themes = rankCounts(themeCounts, themeOrder)
	return r
}

func meanLength(lengths []int) float64 {
	if len(lengths) == 0 {
		return 0
	}
	data := make([]float64, len(lengths))
	for i, n := range lengths {
		data[i] = float64(n)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	return mean
}

// Neutral is derived, never counted directly. Positive and negative
// classifications are mutually exclusive per row, so this always equals
// the sentiment analyzer's own neutral count.
func (r SummaryResult) Neutral() int {
	return r.Total - r.Positive - r.Negative
}

// Report formats the four-part summary report.
func (r SummaryResult) Report() string {
	lines := []string{
		"=== FEEDBACK SUMMARY ===",
		"",
		fmt.Sprintf("Total feedback entries: %d", r.Total),
		fmt.Sprintf("Average feedback length: %.1f characters", r.AvgLength),
		"",
		"Most common themes:",
	}
	top := r.Themes
	if len(top) > topThemeCount {
		top = top[:topThemeCount]
	}
	for _, theme := range top {
		lines = append(lines, fmt.Sprintf("- %s (mentioned %d times)", theme.Word, theme.Count))
	}
	lines = append(lines,
		"",
		"Quick Sentiment Overview:",
		fmt.Sprintf("- Positive feedback: %d", r.Positive),
		fmt.Sprintf("- Negative feedback: %d", r.Negative),
		fmt.Sprintf("- Neutral feedback: %d", r.Neutral()),
	)
	return strings.Join(lines, "\n")
}
