package analysis

import (
	"fmt"
	"sort"
	"strings"

	"feedlens/domain/feedback"
	"feedlens/domain/lexicon"
)

const topKeywordCount = 20

// KeywordCount is one (word, count) pair of a frequency ranking.
type KeywordCount struct {
	Word  string
	Count int
}

// KeywordResult holds the full frequency ranking, descending by count
// with ties in first-encountered order.
type KeywordResult struct {
	Keywords []KeywordCount
}

// AnalyzeKeywords tokenizes every row, drops stop words and tokens
// shorter than 3 characters, and ranks the remaining tokens by
// frequency across the whole table.
func AnalyzeKeywords(t *feedback.Table, column string) KeywordResult {
	counts := make(map[string]int)
	var order []string

	for _, row := range t.Rows {
		text := strings.ToLower(row[column].String())
		for _, word := range Tokens(text) {
			if lexicon.IsStopWord(word) || len(word) <= 2 {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	return KeywordResult{Keywords: rankCounts(counts, order)}
}

// rankCounts orders words by descending count. The stable sort keeps
// first-encountered order between equal counts.
func rankCounts(counts map[string]int, order []string) []KeywordCount {
	ranked := make([]KeywordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Top returns at most n leading entries of the ranking.
func (r KeywordResult) Top(n int) []KeywordCount {
	if len(r.Keywords) < n {
		n = len(r.Keywords)
	}
	return r.Keywords[:n]
}

// Report formats the top-20 keyword report.
func (r KeywordResult) Report() string {
	lines := []string{
		"=== KEYWORD ANALYSIS RESULTS ===",
		"",
		"Top 20 Keywords:",
		strings.Repeat("-", 30),
	}
	for _, kw := range r.Top(topKeywordCount) {
		lines = append(lines, fmt.Sprintf("%s: %d occurrences", kw.Word, kw.Count))
	}
	return strings.Join(lines, "\n")
}
