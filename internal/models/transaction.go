package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingTransactionID = errors.New("transaction id is required")
	ErrMissingMerchant      = errors.New("merchant is required")
	ErrNegativeAmount       = errors.New("transaction amount must not be negative")
)

// TransactionRecord is one row of an input table. PostalCode and TaxID are
// optional reference fields; nil means the value is missing.
type TransactionRecord struct {
	ID         string          `json:"transaction_id" yaml:"transaction_id"`
	Merchant   string          `json:"merchant" yaml:"merchant"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
	PostalCode *string         `json:"zip_code" yaml:"zip_code"`
	TaxID      *string         `json:"tax_id" yaml:"tax_id"`
	Date       *time.Time      `json:"date,omitempty" yaml:"date,omitempty"`
}

// Validate checks the loader-level constraints of a record. The scoring
// pipeline never calls it: absent reference fields are valid values.
func (r *TransactionRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrMissingTransactionID
	}

	if strings.TrimSpace(r.Merchant) == "" {
		return ErrMissingMerchant
	}

	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
