package loader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingColumns  = errors.New("missing required columns")
	ErrEmptyInput      = errors.New("input table is empty")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooManyRows     = errors.New("input table exceeds the row limit")
	ErrUnreadable      = errors.New("input table could not be read")
)

// ColumnError reports required columns absent from an input table.
type ColumnError struct {
	Missing  []string
	Required []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("table must contain columns: %s (missing: %s)",
		strings.Join(e.Required, ", "), strings.Join(e.Missing, ", "))
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumns
}

// Warning reasons recorded for skipped or adjusted rows.
const (
	ReasonInvalidAmount  = "amount is not a number"
	ReasonNegativeAmount = "amount is negative"
	ReasonMissingID      = "transaction id is blank"
	ReasonMissingMerch   = "merchant is blank"
	ReasonInvalidDate    = "date could not be parsed"
	ReasonDuplicateID    = "duplicate transaction id"
)

// RowWarning describes a problem with one input row. Skipped is false when
// the row was kept with the offending value dropped.
type RowWarning struct {
	Line    int    `json:"line" yaml:"line"`
	Column  string `json:"column" yaml:"column"`
	Value   string `json:"value" yaml:"value"`
	Reason  string `json:"reason" yaml:"reason"`
	Skipped bool   `json:"skipped" yaml:"skipped"`
}

func (w RowWarning) String() string {
	action := "kept"
	if w.Skipped {
		action = "skipped"
	}
	return fmt.Sprintf("line %d: %s %q: %s (%s)", w.Line, w.Column, w.Value, w.Reason, action)
}
