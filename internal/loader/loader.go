// Package loader reads transaction tables from delimited text and Excel
// workbooks, validates their columns and normalizes cell values into
// models.TransactionRecord.
//
// Malformed rows never abort a load. A row whose id or merchant is blank, or
// whose amount is not a non-negative number, is skipped and reported as a
// RowWarning. An unparseable date is dropped and the row kept. Only a missing
// required column, an empty table or an oversized table fails the load.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/quality"

	"github.com/shopspring/decimal"
)

// Format is an input table encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// Options controls how a table is read.
type Options struct {
	// Delimiter for delimited text. Zero means ',' (or '\t' for .tsv).
	Delimiter rune
	// Sheet to read from a workbook. Empty means the first sheet.
	Sheet string
	// MaxRows caps the number of data rows. Zero means unlimited.
	MaxRows int
}

// Result is a loaded table.
type Result struct {
	Records     []models.TransactionRecord `json:"-"`
	Warnings    []RowWarning               `json:"warnings"`
	TotalRows   int                        `json:"total_rows"`
	SkippedRows int                        `json:"skipped_rows"`
	HasDates    bool                       `json:"has_dates"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
}

// DetectFormat picks a format from a file name extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, filepath.Ext(filename))
	}
}

// Load reads a table, choosing the parser from the file name.
func Load(filename string, r io.Reader, opts Options) (*Result, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return LoadXLSX(r, opts)
	case FormatTSV:
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
		return LoadCSV(r, opts)
	default:
		return LoadCSV(r, opts)
	}
}

// buildResult turns a header row and raw data rows into records. lines holds
// the 1-based source line of each row, used in warnings.
func buildResult(headers []string, rows [][]string, lines []int, opts Options) (*Result, error) {
	positions := resolveColumns(headers)
	if missing := missingColumns(positions); len(missing) > 0 {
		return nil, &ColumnError{Missing: missing, Required: RequiredHeaders()}
	}

	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrTooManyRows, len(rows), opts.MaxRows)
	}

	_, hasDates := positions[ColumnDate]
	result := &Result{
		Records:   make([]models.TransactionRecord, 0, len(rows)),
		Warnings:  []RowWarning{},
		TotalRows: len(rows),
		HasDates:  hasDates,
	}
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		line := lines[i]
		if isBlankRow(row) {
			result.TotalRows--
			continue
		}

		record, warnings, ok := parseRow(row, positions, line)
		result.Warnings = append(result.Warnings, warnings...)
		if !ok {
			result.SkippedRows++
			continue
		}

		if _, dup := seen[record.ID]; dup {
			result.Warnings = append(result.Warnings, RowWarning{
				Line:   line,
				Column: ColumnTransactionID.Header(),
				Value:  record.ID,
				Reason: ReasonDuplicateID,
			})
		}
		seen[record.ID] = struct{}{}

		result.Records = append(result.Records, record)
	}

	for _, w := range result.Warnings {
		slog.Warn("input row warning",
			"line", w.Line,
			"column", w.Column,
			"value", w.Value,
			"reason", w.Reason,
			"skipped", w.Skipped)
	}

	return result, nil
}

func parseRow(row []string, positions map[Column]int, line int) (models.TransactionRecord, []RowWarning, bool) {
	var warnings []RowWarning
	skip := func(col Column, value, reason string) (models.TransactionRecord, []RowWarning, bool) {
		warnings = append(warnings, RowWarning{
			Line:    line,
			Column:  col.Header(),
			Value:   value,
			Reason:  reason,
			Skipped: true,
		})
		return models.TransactionRecord{}, warnings, false
	}

	id := strings.TrimSpace(cell(row, positions, ColumnTransactionID))
	if id == "" {
		return skip(ColumnTransactionID, id, ReasonMissingID)
	}

	merchant := strings.TrimSpace(cell(row, positions, ColumnMerchant))
	if merchant == "" {
		return skip(ColumnMerchant, merchant, ReasonMissingMerch)
	}

	rawAmount := cell(row, positions, ColumnAmount)
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return skip(ColumnAmount, rawAmount, ReasonInvalidAmount)
	}
	if amount.IsNegative() {
		return skip(ColumnAmount, rawAmount, ReasonNegativeAmount)
	}

	record := models.TransactionRecord{
		ID:         id,
		Merchant:   merchant,
		Amount:     amount,
		PostalCode: optionalCell(row, positions, ColumnPostalCode),
		TaxID:      optionalCell(row, positions, ColumnTaxID),
	}

	if rawDate := strings.TrimSpace(cell(row, positions, ColumnDate)); rawDate != "" {
		date, err := ParseDate(rawDate)
		if err != nil {
			warnings = append(warnings, RowWarning{
				Line:   line,
				Column: ColumnDate.Header(),
				Value:  rawDate,
				Reason: ReasonInvalidDate,
			})
		} else {
			record.Date = &date
		}
	}

	return record, warnings, true
}

func cell(row []string, positions map[Column]int, col Column) string {
	i, ok := positions[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// optionalCell returns nil for blank and null-token cells so that missing
// reference data has a single representation.
func optionalCell(row []string, positions map[Column]int, col Column) *string {
	value := strings.TrimSpace(cell(row, positions, col))
	if quality.IsAbsentValue(value) {
		return nil
	}
	return &value
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ParseAmount parses a currency cell such as "12.50", "$1,024.00" or " 7 ".
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(cleaned)
}

// ParseDate parses a date cell using the supported layouts.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
