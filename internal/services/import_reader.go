// internal/services/import_reader.go
package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/krowne/krownebase/internal/apperr"
)

type ImportFormat string

const (
	FormatCSV  ImportFormat = "csv"
	FormatXLSX ImportFormat = "xlsx"

	maxReportedParseErrors = 100
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportRow is one data row keyed by trimmed header name. Line is the
// 1-based line (CSV) or sheet row (XLSX) the values came from.
type ImportRow struct {
	Line   int
	Values map[string]string
}

// RowError describes a problem with a single input row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// FormatFromFilename picks the parser from the file extension, defaulting
// to CSV.
func FormatFromFilename(name string) ImportFormat {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// ReadImportRows parses data into rows. Structural problems are reported
// together as one parse error whose details list every offending row.
func ReadImportRows(data []byte, format ImportFormat) ([]ImportRow, error) {
	switch format {
	case FormatXLSX:
		return readXLSXRows(data)
	default:
		return readCSVRows(data)
	}
}

func readCSVRows(data []byte) ([]ImportRow, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, apperr.New(apperr.KindParse, "parse_csv", "CSV parsing error: file is not valid UTF-8")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	// the header row fixes the field count for every later record
	reader.FieldsPerRecord = 0
	// inch marks such as 12" appear unquoted in dimension columns
	reader.LazyQuotes = true

	var (
		header    []string
		rows      []ImportRow
		rowErrors []RowError
	)

	for len(rowErrors) < maxReportedParseErrors {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErrors = append(rowErrors, RowError{Row: parseErr.Line, Message: parseErr.Err.Error()})
				continue
			}
			return nil, apperr.Wrap(apperr.KindParse, "parse_csv", err)
		}

		line, _ := reader.FieldPos(0)
		if header == nil {
			header = trimHeaders(record)
			continue
		}
		rows = append(rows, ImportRow{Line: line, Values: zipRow(header, record)})
	}

	if len(rowErrors) > 0 {
		return nil, parseError("parse_csv", rowErrors)
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.KindEmptyInput, "parse_csv", "No data found in CSV")
	}
	return rows, nil
}

func readXLSXRows(data []byte) ([]ImportRow, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "parse_xlsx", fmt.Errorf("open workbook: %w", err))
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.New(apperr.KindEmptyInput, "parse_xlsx", "No data found in workbook")
	}

	records, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, apperr.Wrap(apperr.KindParse, "parse_xlsx", err)
	}

	var (
		header    []string
		rows      []ImportRow
		rowErrors []RowError
	)
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		if header == nil {
			header = trimHeaders(record)
			continue
		}
		// excelize drops trailing empty cells, so only extra non-empty cells are structural errors
		if len(record) > len(header) && !allBlank(record[len(header):]) {
			rowErrors = append(rowErrors, RowError{
				Row:     i + 1,
				Message: fmt.Sprintf("row has %d cells, header declares %d", len(record), len(header)),
			})
			if len(rowErrors) >= maxReportedParseErrors {
				break
			}
			continue
		}
		rows = append(rows, ImportRow{Line: i + 1, Values: zipRow(header, record)})
	}

	if len(rowErrors) > 0 {
		return nil, parseError("parse_xlsx", rowErrors)
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.KindEmptyInput, "parse_xlsx", "No data found in workbook")
	}
	return rows, nil
}

func parseError(op string, rowErrors []RowError) error {
	return apperr.New(apperr.KindParse, op,
		fmt.Sprintf("CSV parsing error: %d malformed row(s)", len(rowErrors))).
		WithDetails(rowErrors)
}

func trimHeaders(record []string) []string {
	header := make([]string, len(record))
	for i, h := range record {
		header[i] = strings.TrimSpace(h)
	}
	return header
}

func zipRow(header, record []string) map[string]string {
	values := make(map[string]string, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if i < len(record) {
			values[name] = record[i]
		} else {
			values[name] = ""
		}
	}
	return values
}

func allBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
