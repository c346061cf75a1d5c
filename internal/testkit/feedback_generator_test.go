package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGeneratorRowShape(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.RowCount = 25
	rows := NewFeedbackGenerator(cfg).Rows()

	if len(rows) != 26 {
		t.Fatalf("rows = %d, want header + 25", len(rows))
	}
	header := rows[0]
	want := []string{"customer_id", "feedback", "rating"}
	if !reflect.DeepEqual(header, want) {
		t.Errorf("header = %v, want %v", header, want)
	}
	for i, row := range rows[1:] {
		if len(row) != 3 {
			t.Fatalf("row %d has %d cells", i+1, len(row))
		}
		if row[1] == "" {
			t.Errorf("row %d has empty feedback text", i+1)
		}
	}
}

func TestGeneratorDeterministicBySeed(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	first := NewFeedbackGenerator(cfg).Rows()
	second := NewFeedbackGenerator(cfg).Rows()
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different datasets")
	}

	cfg.Seed = 7
	third := NewFeedbackGenerator(cfg).Rows()
	if reflect.DeepEqual(first, third) {
		t.Error("different seeds produced identical datasets")
	}
}

func TestGeneratorWriteCSV(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.RowCount = 10
	gen := NewFeedbackGenerator(cfg)

	path := filepath.Join(t.TempDir(), "sample.csv")
	if err := gen.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("written file is not valid CSV: %v", err)
	}
	if len(records) != 11 {
		t.Errorf("csv has %d records, want header + 10", len(records))
	}
}
