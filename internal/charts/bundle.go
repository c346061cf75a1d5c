package charts

import (
	"feedlens/internal/analysis"
)

// ForOutcome maps a pipeline outcome onto its chart artifacts. A
// failed outcome, or one whose aggregates cannot be charted, yields an
// empty slice.
func ForOutcome(out *analysis.Outcome) []Artifact {
	if out == nil {
		return nil
	}

	switch {
	case out.Sentiment != nil:
		s := out.Sentiment
		return []Artifact{SentimentPie(SentimentCounts{
			Positive: s.Positive,
			Negative: s.Negative,
			Neutral:  s.Neutral,
		})}

	case out.Keywords != nil:
		return []Artifact{KeywordBars(keywordPairs(out.Keywords.Top(maxBarLabels)))}

	case out.Topics != nil:
		pairs := make([]Pair, 0, len(out.Topics.Topics))
		for _, tc := range out.Topics.Mentioned() {
			pairs = append(pairs, Pair{Label: tc.Label, Count: tc.Count})
		}
		return []Artifact{TopicBars(pairs)}

	case out.Summary != nil:
		s := out.Summary
		artifacts := []Artifact{LengthHistogram(s.Lengths)}
		if s.Total > 0 {
			artifacts = append(artifacts, SentimentPie(SentimentCounts{
				Positive: s.Positive,
				Negative: s.Negative,
				Neutral:  s.Neutral(),
			}))
		}
		return artifacts
	}
	return nil
}

func keywordPairs(kws []analysis.KeywordCount) []Pair {
	pairs := make([]Pair, len(kws))
	for i, kw := range kws {
		pairs[i] = Pair{Label: kw.Word, Count: kw.Count}
	}
	return pairs
}
