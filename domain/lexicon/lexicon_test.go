package lexicon

import (
	"strings"
	"testing"
)

func TestSentimentSetsDisjoint(t *testing.T) {
	for word := range Positive {
		if _, ok := Negative[word]; ok {
			t.Errorf("word %q appears in both sentiment sets", word)
		}
	}
}

func TestSentimentWordsLowercase(t *testing.T) {
	check := func(set map[string]struct{}, name string) {
		for word := range set {
			if word != strings.ToLower(word) {
				t.Errorf("%s word %q is not lowercase", name, word)
			}
		}
	}
	check(Positive, "positive")
	check(Negative, "negative")
}

func TestTopicDeclarationOrder(t *testing.T) {
	want := []string{
		"Customer Service",
		"Product Quality",
		"Price/Value",
		"Delivery/Shipping",
		"Website/App",
		"Communication",
	}
	if len(Topics) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(Topics))
	}
	for i, topic := range Topics {
		if topic.Label != want[i] {
			t.Errorf("topic %d = %q, want %q", i, topic.Label, want[i])
		}
		if len(topic.Keywords) == 0 {
			t.Errorf("topic %q has no keywords", topic.Label)
		}
	}
}

func TestStopWordSets(t *testing.T) {
	// The summary set is a strict subset of the keyword set.
	for _, word := range []string{"the", "and", "with", "by"} {
		if !IsStopWord(word) {
			t.Errorf("%q should be a keyword stop word", word)
		}
		if !IsSummaryStopWord(word) {
			t.Errorf("%q should be a summary stop word", word)
		}
	}
	// Pronouns and auxiliaries are filtered for keywords only.
	for _, word := range []string{"they", "would", "this"} {
		if !IsStopWord(word) {
			t.Errorf("%q should be a keyword stop word", word)
		}
		if IsSummaryStopWord(word) {
			t.Errorf("%q should not be in the summary stop word set", word)
		}
	}
	if IsStopWord("service") || IsSummaryStopWord("service") {
		t.Error("content words must not be stop words")
	}
}
