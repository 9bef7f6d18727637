package models

import "github.com/shopspring/decimal"

// ScoredRecord is a TransactionRecord annotated with data quality flags and
// the fee it is estimated to cost.
type ScoredRecord struct {
	TransactionRecord `yaml:",inline"`

	MissingPostalCode bool            `json:"missing_zip" yaml:"missing_zip"`
	MissingTaxID      bool            `json:"missing_tax_id" yaml:"missing_tax_id"`
	HasMissingInfo    bool            `json:"has_missing_info" yaml:"has_missing_info"`
	PotentialSavings  decimal.Decimal `json:"potential_savings" yaml:"potential_savings"`
}

// IsComplete reports whether neither reference field is missing.
func (s ScoredRecord) IsComplete() bool {
	return !s.HasMissingInfo
}

// MerchantSavings is the potential savings total for one merchant.
type MerchantSavings struct {
	Merchant         string          `json:"merchant" yaml:"merchant"`
	TotalSavings     decimal.Decimal `json:"total_savings" yaml:"total_savings"`
	TransactionCount int             `json:"transaction_count" yaml:"transaction_count"`
	MissingCount     int             `json:"missing_count" yaml:"missing_count"`
}
