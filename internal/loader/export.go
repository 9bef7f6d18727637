package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	exportDateLayout = "2006-01-02 15:04:05"
	exportSheetName  = "Transactions"
)

func exportHeaders() []string {
	headers := make([]string, len(ExportColumns))
	for i, c := range ExportColumns {
		headers[i] = c.Header()
	}
	return headers
}

func exportRow(r models.TransactionRecord) []string {
	date := ""
	if r.Date != nil {
		date = FormatDate(*r.Date)
	}

	return []string{
		r.ID,
		r.Merchant,
		r.Amount.StringFixed(2),
		models.StringValue(r.PostalCode),
		models.StringValue(r.TaxID),
		date,
	}
}

// WriteCSV writes records as a comma separated table with the standard
// headers. Missing reference fields are written as empty cells.
func WriteCSV(w io.Writer, records []models.TransactionRecord) error {
	return writeDelimited(w, records, ',')
}

// WriteTSV writes records as a tab separated table.
func WriteTSV(w io.Writer, records []models.TransactionRecord) error {
	return writeDelimited(w, records, '\t')
}

func writeDelimited(w io.Writer, records []models.TransactionRecord, comma rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma

	if err := writer.Write(exportHeaders()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		if err := writer.Write(exportRow(r)); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes records to a single-sheet workbook.
func WriteXLSX(w io.Writer, records []models.TransactionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, 1, exportHeaders()); err != nil {
		return err
	}

	for i, r := range records {
		if err := setRow(f, i+2, exportRow(r)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cellName, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := f.SetSheetRow(exportSheetName, cellName, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// FormatDate renders a record date the way the exporter does.
func FormatDate(t time.Time) string {
	return t.UTC().Format(exportDateLayout)
}
