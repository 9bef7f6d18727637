package quality

import (
	"fmt"
	"math"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/shopspring/decimal"
)

// Summary is a single snapshot of everything the dashboard displays.
type Summary struct {
	TotalTransactions      int                      `json:"total_transactions" yaml:"total_transactions"`
	CompletedTransactions  int                      `json:"completed_transactions" yaml:"completed_transactions"`
	IncompleteTransactions int                      `json:"incomplete_transactions" yaml:"incomplete_transactions"`
	MissingPostalCodes     int                      `json:"missing_zip_codes" yaml:"missing_zip_codes"`
	MissingTaxIDs          int                      `json:"missing_tax_ids" yaml:"missing_tax_ids"`
	CompletionRatio        float64                  `json:"completion_ratio" yaml:"completion_ratio"`
	CompletionCaption      string                   `json:"completion_caption" yaml:"completion_caption"`
	TotalPotentialSavings  decimal.Decimal          `json:"total_potential_savings" yaml:"total_potential_savings"`
	RealizedSavings        decimal.Decimal          `json:"realized_savings" yaml:"realized_savings"`
	FixedTransactions      []models.ScoredRecord    `json:"fixed_transactions" yaml:"fixed_transactions"`
	TopMerchants           []models.MerchantSavings `json:"top_merchants" yaml:"top_merchants"`
	Merchants              []models.MerchantSavings `json:"merchants" yaml:"merchants"`
}

// Summarize computes the dashboard snapshot for an already scored table.
func Summarize(scored []models.ScoredRecord, selected map[string]struct{}, topK int) *Summary {
	merchants := AggregateByMerchant(scored)
	ratio := CompletionRatio(scored)
	complete := countComplete(scored)

	summary := &Summary{
		TotalTransactions:      len(scored),
		CompletedTransactions:  complete,
		IncompleteTransactions: len(scored) - complete,
		CompletionRatio:        ratio,
		CompletionCaption:      CompletionCaption(ratio),
		TotalPotentialSavings:  TotalPotentialSavings(scored),
		RealizedSavings:        TotalSavingsForSelection(scored, selected),
		FixedTransactions:      SelectedRecords(scored, selected),
		TopMerchants:           TopMerchants(merchants, topK),
		Merchants:              merchants,
	}

	for _, s := range scored {
		if s.MissingPostalCode {
			summary.MissingPostalCodes++
		}
		if s.MissingTaxID {
			summary.MissingTaxIDs++
		}
	}

	return summary
}

// CompletionPercent converts a ratio into a whole percentage.
func CompletionPercent(ratio float64) int {
	return int(math.RoundToEven(ratio * 100))
}

// CompletionCaption renders the progress caption shown under the
// completion bar.
func CompletionCaption(ratio float64) string {
	pct := CompletionPercent(ratio)
	return fmt.Sprintf("%d%% of transaction data optimized - Unlock %d%% more savings!", pct, 100-pct)
}

// FormatCurrency renders an amount as dollars with thousands separators,
// e.g. "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	grouped := make([]byte, 0, len(whole)+len(whole)/3)
	for i := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}

	return sign + "$" + string(grouped) + "." + frac
}
