package analysis

import (
	"fmt"
	"strings"

	"feedlens/domain/feedback"
	"feedlens/domain/lexicon"
)

// SentimentResult aggregates per-class row counts for a table.
type SentimentResult struct {
	Total    int
	Positive int
	Negative int
	Neutral  int
}

// AnalyzeSentiment classifies every row by lexicon hits. A row is
// positive when more distinct positive marker words than negative ones
// appear in its lowercased text (substring containment, not word
// match), negative in the mirror case, neutral on a tie.
func AnalyzeSentiment(t *feedback.Table, column string) SentimentResult {
	var r SentimentResult
	for _, row := range t.Rows {
		text := strings.ToLower(row[column].String())
		r.Total++

		pos, neg := markerHits(text)
		switch {
		case pos > neg:
			r.Positive++
		case neg > pos:
			r.Negative++
		default:
			r.Neutral++
		}
	}
	return r
}

// markerHits counts distinct positive and negative lexicon words
// contained in the lowercased text.
func markerHits(text string) (pos, neg int) {
	for word := range lexicon.Positive {
		if strings.Contains(text, word) {
			pos++
		}
	}
	for word := range lexicon.Negative {
		if strings.Contains(text, word) {
			neg++
		}
	}
	return pos, neg
}

// PositivePct returns the positive share of rows in percent, 0 for an
// empty result.
func (r SentimentResult) PositivePct() float64 { return pct(r.Positive, r.Total) }

// NegativePct returns the negative share of rows in percent.
func (r SentimentResult) NegativePct() float64 { return pct(r.Negative, r.Total) }

// NeutralPct returns the neutral share of rows in percent.
func (r SentimentResult) NeutralPct() float64 { return pct(r.Neutral, r.Total) }

func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Overall returns the aggregate label. The strictly higher of the
// positive and negative percentages wins; a tie is NEUTRAL.
func (r SentimentResult) Overall() string {
	switch {
	case r.PositivePct() > r.NegativePct():
		return "POSITIVE"
	case r.NegativePct() > r.PositivePct():
		return "NEGATIVE"
	default:
		return "NEUTRAL"
	}
}

// Report formats the fixed-order sentiment report.
func (r SentimentResult) Report() string {
	lines := []string{
		"=== SENTIMENT ANALYSIS RESULTS ===",
		"",
		fmt.Sprintf("Total feedback analyzed: %d", r.Total),
		fmt.Sprintf("Positive feedback: %d (%.1f%%)", r.Positive, r.PositivePct()),
		fmt.Sprintf("Negative feedback: %d (%.1f%%)", r.Negative, r.NegativePct()),
		fmt.Sprintf("Neutral feedback: %d (%.1f%%)", r.Neutral, r.NeutralPct()),
		"",
		fmt.Sprintf("Overall Sentiment: %s", r.Overall()),
	}
	return strings.Join(lines, "\n")
}
