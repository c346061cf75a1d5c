// Package tabular reads feedback datasets from CSV, XLSX and
// line-oriented TXT files into the shared table model.
package tabular

import (
	"bufio"
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"feedlens/domain/feedback"
	"feedlens/internal/errors"

	"github.com/xuri/excelize/v2"
)

// TextColumn is the column name assigned to rows of a line-oriented file.
const TextColumn = "feedback"

// DataReader loads a feedback file into a table. The file type is keyed
// on the extension; an unsupported extension fails before the file is
// ever opened.
type DataReader struct {
	filePath string
	fileType string // "csv", "xlsx" or "txt"
}

// NewDataReader creates a reader for the given path.
func NewDataReader(filePath string) *DataReader {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	return &DataReader{filePath: filePath, fileType: ext}
}

// ReadData loads the file into a feedback table. The table may be
// empty; emptiness is the caller's check, not the loader's.
func (r *DataReader) ReadData() (*feedback.Table, error) {
	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	case "txt":
		return r.readTextData()
	default:
		return nil, errors.UnsupportedFormat(r.fileType)
	}
}

// readCSVData reads a comma-separated file with a header row.
func (r *DataReader) readCSVData() (*feedback.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IOFailure(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.IOFailure(r.filePath, err)
	}
	log.Printf("[DataReader] CSV file read (%d raw rows)", len(rows))

	return r.processRows(rows), nil
}

// readExcelData reads the first sheet of an xlsx workbook with a header row.
func (r *DataReader) readExcelData() (*feedback.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IOFailure(r.filePath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.IOFailure(r.filePath, err)
	}
	log.Printf("[DataReader] XLSX sheet %q read (%d raw rows)", sheet, len(rows))

	return r.processRows(rows), nil
}

// readTextData treats each trimmed non-blank line as one feedback row
// in a single-column table.
func (r *DataReader) readTextData() (*feedback.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IOFailure(r.filePath, err)
	}
	defer file.Close()

	table := &feedback.Table{Columns: []string{TextColumn}}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		table.Rows = append(table.Rows, feedback.Row{TextColumn: feedback.TextCell(line)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.IOFailure(r.filePath, err)
	}

	log.Printf("[DataReader] TXT file processed (%d rows)", len(table.Rows))
	return table, nil
}

// processRows converts raw string rows (header first) into a table.
// Cells are typed as text, number or missing; the raw form is kept so
// analysis always sees the original text.
func (r *DataReader) processRows(rows [][]string) *feedback.Table {
	if len(rows) == 0 {
		return &feedback.Table{}
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	table := &feedback.Table{Columns: headers}
	for i := 1; i < len(rows); i++ {
		row := make(feedback.Row, len(headers))
		for j, header := range headers {
			if j < len(rows[i]) {
				row[header] = typeCell(strings.TrimSpace(rows[i][j]))
			} else {
				row[header] = feedback.MissingCell()
			}
		}
		table.Rows = append(table.Rows, row)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(table.Rows))
	return table
}

func typeCell(raw string) feedback.CellValue {
	if raw == "" {
		return feedback.MissingCell()
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return feedback.NumberCell(raw, v)
	}
	return feedback.TextCell(raw)
}
