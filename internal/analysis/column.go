package analysis

import (
	"strings"

	"feedlens/domain/feedback"
)

// columnNameHints are matched as substrings against lowercased column
// names, in table column order.
var columnNameHints = []string{"feedback", "review", "comment", "text", "message", "response"}

// InferFeedbackColumn picks the column most likely to hold free-text
// feedback. First a name match wins, then the first text-typed column;
// ok is false when neither rule selects anything.
func InferFeedbackColumn(t *feedback.Table) (column string, ok bool) {
	for _, col := range t.Columns {
		lower := strings.ToLower(col)
		for _, hint := range columnNameHints {
			if strings.Contains(lower, hint) {
				return col, true
			}
		}
	}

	for _, col := range t.Columns {
		if isTextColumn(t, col) {
			return col, true
		}
	}
	return "", false
}

// isTextColumn reports whether any cell of the column holds
// non-numeric text. A column of only numbers or only missing values is
// not text-typed.
func isTextColumn(t *feedback.Table, col string) bool {
	for _, row := range t.Rows {
		if cell, exists := row[col]; exists && cell.Kind == feedback.CellText {
			return true
		}
	}
	return false
}
