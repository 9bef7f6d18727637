package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// LoadCSV reads a delimited table whose first non-empty line is the header.
func LoadCSV(r io.Reader, opts Options) (*Result, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	configureReader(reader, opts)

	var rows [][]string
	var lines []int
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrUnreadable, parseErr.Line, parseErr.Err)
			}
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}

		// Quoted fields may span lines, so the record's own start line is used.
		line, _ := reader.FieldPos(0)
		rows = append(rows, row)
		lines = append(lines, line)
	}

	headerIndex := firstNonBlank(rows)
	if headerIndex < 0 {
		return nil, ErrEmptyInput
	}

	return buildResult(rows[headerIndex], rows[headerIndex+1:], lines[headerIndex+1:], opts)
}

// Cells are trimmed after parsing. TrimLeadingSpace is left off because it
// swallows empty tab-separated cells.
func configureReader(reader *csv.Reader, opts Options) {
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	// Short rows are tolerated; missing trailing cells read as blank.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

func firstNonBlank(rows [][]string) int {
	for i, row := range rows {
		if !isBlankRow(row) {
			return i
		}
	}
	return -1
}

// sequentialLines numbers n rows starting at first, one row per line.
func sequentialLines(first, n int) []int {
	lines := make([]int, n)
	for i := range lines {
		lines[i] = first + i
	}
	return lines
}
