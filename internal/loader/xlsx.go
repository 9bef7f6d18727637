package loader

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a table from an Excel workbook. The first sheet is used
// unless opts.Sheet names another one.
func LoadXLSX(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	sheet, err := pickSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, sheet, err)
	}

	headerIndex := firstNonBlank(rows)
	if headerIndex < 0 {
		return nil, ErrEmptyInput
	}

	data := rows[headerIndex+1:]
	return buildResult(rows[headerIndex], data, sequentialLines(headerIndex+2, len(data)), opts)
}

func pickSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrEmptyInput
	}

	if name == "" {
		return sheets[0], nil
	}

	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: sheet %q not found", ErrUnreadable, name)
}
