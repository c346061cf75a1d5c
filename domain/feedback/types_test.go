package feedback

import (
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		input string
		want  Kind
	}{
		{"sentiment", KindSentiment},
		{"keywords", KindKeywords},
		{"topics", KindTopics},
		{"summary", KindSummary},
		{" Sentiment ", KindSentiment},
		{"SUMMARY", KindSummary},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.input)
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "trends", "sentiments", "all"} {
		if _, err := ParseKind(input); err == nil {
			t.Errorf("ParseKind(%q) should fail", input)
		}
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("round trip of %v produced %v", k, parsed)
		}
	}
}

func TestCellValueString(t *testing.T) {
	if got := TextCell("hello").String(); got != "hello" {
		t.Errorf("text cell string = %q", got)
	}
	if got := NumberCell("4.5", 4.5).String(); got != "4.5" {
		t.Errorf("number cell keeps raw form, got %q", got)
	}
	if got := MissingCell().String(); got != "" {
		t.Errorf("missing cell string = %q, want empty", got)
	}
}

func TestTableEmpty(t *testing.T) {
	var nilTable *Table
	if !nilTable.Empty() {
		t.Error("nil table should be empty")
	}

	table := &Table{Columns: []string{"feedback"}}
	if !table.Empty() {
		t.Error("table without rows should be empty")
	}

	table.Rows = append(table.Rows, Row{"feedback": TextCell("ok")})
	if table.Empty() {
		t.Error("table with a row should not be empty")
	}
	if !table.HasColumn("feedback") || table.HasColumn("rating") {
		t.Error("HasColumn mismatch")
	}
}
