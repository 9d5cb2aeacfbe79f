package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseOrderFile reads an uploaded order file into raw rows, dispatching
// on the file extension. XLSX workbooks read the first worksheet only.
func ParseOrderFile(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(r)
	default:
		return ParseOrderCSV(r)
	}
}

// ParseXLSX reads the first worksheet of a workbook into raw rows.
func ParseXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// ParseOrderCSV reads an uploaded CSV order file into raw rows. Unreadable
// lines are skipped with a warning rather than failing the whole file.
func ParseOrderCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(SkipBOM(bytes.NewReader(text)))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	line := 0
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: csv line %d read error (skipped): %v", line, err)
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
