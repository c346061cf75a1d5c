package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeKeywordsRankingAndTieBreak(t *testing.T) {
	table := tableOf("Great product, great service!", "Bad service.")
	r := AnalyzeKeywords(table, "feedback")

	want := []KeywordCount{
		{Word: "great", Count: 2},
		{Word: "service", Count: 2},
		{Word: "product", Count: 1},
		{Word: "bad", Count: 1},
	}
	if !reflect.DeepEqual(r.Keywords, want) {
		t.Errorf("ranking = %v, want %v", r.Keywords, want)
	}
}

func TestAnalyzeKeywordsFilters(t *testing.T) {
	table := tableOf("The item is OK but we hate it")
	r := AnalyzeKeywords(table, "feedback")

	for _, kw := range r.Keywords {
		if len(kw.Word) <= 2 {
			t.Errorf("short token %q survived the length filter", kw.Word)
		}
		switch kw.Word {
		case "the", "but", "is", "we", "it":
			t.Errorf("stop word %q survived", kw.Word)
		}
	}
	// "item" and "hate" remain.
	if len(r.Keywords) != 2 {
		t.Errorf("keywords = %v, want item and hate only", r.Keywords)
	}
}

func TestKeywordReportTopTwenty(t *testing.T) {
	texts := []string{
		"alpha bravo charlie delta echo foxtrot golf hotel india juliett",
		"kilo lima mike november oscar papa quebec romeo sierra tango",
		"uniform victor whiskey xray yankee zulu",
		"alpha alpha bravo",
	}
	r := AnalyzeKeywords(tableOf(texts...), "feedback")
	report := r.Report()

	if !strings.Contains(report, "Top 20 Keywords:") {
		t.Fatalf("report missing header:\n%s", report)
	}
	if !strings.Contains(report, "alpha: 3 occurrences") {
		t.Errorf("report missing leading keyword:\n%s", report)
	}
	// 26 distinct words, only 20 reported.
	if got := strings.Count(report, "occurrences"); got != 20 {
		t.Errorf("report lists %d keywords, want 20", got)
	}
}

func TestKeywordTopShorterThanN(t *testing.T) {
	r := AnalyzeKeywords(tableOf("quality product"), "feedback")
	if got := len(r.Top(20)); got != 2 {
		t.Errorf("Top(20) on 2 keywords returned %d entries", got)
	}
}
