// Package feedback defines the core data model shared by the loader,
// the analyzers, and the callers: a row-oriented table of feedback
// records and the closed set of analysis kinds.
package feedback

import (
	"fmt"
	"strings"
)

// CellKind classifies a single table cell.
type CellKind int

const (
	CellMissing CellKind = iota
	CellText
	CellNumber
)

// CellValue is one cell of a feedback table. Every cell keeps its raw
// textual form; numeric cells additionally carry the parsed value.
type CellValue struct {
	Kind   CellKind
	Raw    string
	Number float64
}

// TextCell builds a text-typed cell.
func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Raw: s}
}

// NumberCell builds a numeric cell, preserving the original textual form.
func NumberCell(raw string, v float64) CellValue {
	return CellValue{Kind: CellNumber, Raw: raw, Number: v}
}

// MissingCell is the absent-value cell.
func MissingCell() CellValue {
	return CellValue{Kind: CellMissing}
}

// String returns the textual form used for analysis. Missing cells
// stringify to the empty string.
func (c CellValue) String() string {
	return c.Raw
}

// Row maps column name to cell value. All rows of a table share the
// same column set.
type Row map[string]CellValue

// Table is an immutable, row-oriented feedback dataset. Columns keeps
// the declared column order from the source file.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table has no usable rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// HasColumn reports whether the named column is declared.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Kind selects one of the four analyses.
type Kind int

const (
	KindSentiment Kind = iota
	KindKeywords
	KindTopics
	KindSummary
)

var kindNames = map[Kind]string{
	KindSentiment: "sentiment",
	KindKeywords:  "keywords",
	KindTopics:    "topics",
	KindSummary:   "summary",
}

var kindFromName = map[string]Kind{
	"sentiment": KindSentiment,
	"keywords":  KindKeywords,
	"topics":    KindTopics,
	"summary":   KindSummary,
}

// Kinds lists all analysis kinds in presentation order.
func Kinds() []Kind {
	return []Kind{KindSentiment, KindKeywords, KindTopics, KindSummary}
}

// String returns the selector name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Title returns the human-readable label used by interactive callers.
func (k Kind) Title() string {
	switch k {
	case KindSentiment:
		return "Sentiment Analysis"
	case KindKeywords:
		return "Keyword Extraction"
	case KindTopics:
		return "Topic Modeling"
	case KindSummary:
		return "Summary Generation"
	}
	return k.String()
}

// ParseKind converts a selector string into a Kind. It is the only
// construction path from untrusted input; anything outside the four
// recognized selectors is rejected here.
func ParseKind(s string) (Kind, error) {
	k, ok := kindFromName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown analysis kind: %q", s)
	}
	return k, nil
}
