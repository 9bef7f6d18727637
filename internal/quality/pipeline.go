// Package quality scores transaction tables for missing reference data and
// estimates the processing fees those gaps cost.
//
// Every function here is pure: inputs are never mutated and every result is
// freshly allocated, so callers may invoke them repeatedly and concurrently.
package quality

import (
	"sort"
	"strings"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultFeeRate is the fraction of a transaction amount assumed lost to
// extra processing fees when reference data is missing (0.5%).
var DefaultFeeRate = decimal.New(5, -3)

// DefaultTopMerchants is the size of the default merchant chart view.
const DefaultTopMerchants = 5

// nullTokens are cell values read as missing, matching the default NA
// markers of common spreadsheet and dataframe exports. Matching is exact.
var nullTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {},
	"-1.#IND": {}, "-1.#QNAN": {}, "1.#IND": {}, "1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "NaN": {}, "nan": {},
	"<NA>": {}, "N/A": {}, "NA": {}, "n/a": {},
	"NULL": {}, "null": {}, "None": {},
}

// IsAbsentValue reports whether a raw cell value counts as missing: blank,
// whitespace, or one of the null tokens.
func IsAbsentValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	_, ok := nullTokens[trimmed]
	return ok
}

// IsAbsent reports whether an optional reference field is missing. Nil,
// blank and null-token strings are treated identically.
func IsAbsent(value *string) bool {
	return value == nil || IsAbsentValue(*value)
}

// Score annotates each record with missing-field flags and its potential
// savings. Output order matches input order; an empty input yields an empty,
// non-nil slice.
func Score(records []models.TransactionRecord, feeRate decimal.Decimal) []models.ScoredRecord {
	scored := make([]models.ScoredRecord, len(records))
	for i, r := range records {
		scored[i] = scoreRecord(r, feeRate)
	}
	return scored
}

func scoreRecord(r models.TransactionRecord, feeRate decimal.Decimal) models.ScoredRecord {
	s := models.ScoredRecord{
		TransactionRecord: r,
		MissingPostalCode: IsAbsent(r.PostalCode),
		MissingTaxID:      IsAbsent(r.TaxID),
		PotentialSavings:  decimal.Zero,
	}
	s.HasMissingInfo = s.MissingPostalCode || s.MissingTaxID

	if s.HasMissingInfo {
		s.PotentialSavings = r.Amount.Mul(feeRate)
	}

	return s
}

// CompletionRatio returns the fraction of records with no missing fields.
// An empty table has no incomplete rows and is reported as 1.0.
func CompletionRatio(scored []models.ScoredRecord) float64 {
	if len(scored) == 0 {
		return 1.0
	}
	return float64(countComplete(scored)) / float64(len(scored))
}

func countComplete(scored []models.ScoredRecord) int {
	complete := 0
	for _, s := range scored {
		if !s.HasMissingInfo {
			complete++
		}
	}
	return complete
}

// AggregateByMerchant sums potential savings per merchant (exact,
// case-sensitive names). Results are ordered by total descending, ties by
// merchant name ascending.
func AggregateByMerchant(scored []models.ScoredRecord) []models.MerchantSavings {
	index := make(map[string]int)
	aggregates := make([]models.MerchantSavings, 0)

	for _, s := range scored {
		i, ok := index[s.Merchant]
		if !ok {
			i = len(aggregates)
			index[s.Merchant] = i
			aggregates = append(aggregates, models.MerchantSavings{
				Merchant:     s.Merchant,
				TotalSavings: decimal.Zero,
			})
		}

		agg := &aggregates[i]
		agg.TotalSavings = agg.TotalSavings.Add(s.PotentialSavings)
		agg.TransactionCount++
		if s.HasMissingInfo {
			agg.MissingCount++
		}
	}

	sort.SliceStable(aggregates, func(a, b int) bool {
		if cmp := aggregates[a].TotalSavings.Cmp(aggregates[b].TotalSavings); cmp != 0 {
			return cmp > 0
		}
		return aggregates[a].Merchant < aggregates[b].Merchant
	})

	return aggregates
}

// TopMerchants returns the first k aggregates. k <= 0 returns all of them.
func TopMerchants(aggregates []models.MerchantSavings, k int) []models.MerchantSavings {
	if k <= 0 || k >= len(aggregates) {
		return append([]models.MerchantSavings(nil), aggregates...)
	}
	return append([]models.MerchantSavings(nil), aggregates[:k]...)
}

// TotalSavingsForSelection sums potential savings over the records whose id
// is selected. Ids that match no record contribute nothing.
func TotalSavingsForSelection(scored []models.ScoredRecord, selected map[string]struct{}) decimal.Decimal {
	total := decimal.Zero
	if len(selected) == 0 {
		return total
	}

	for _, s := range scored {
		if _, ok := selected[s.ID]; ok {
			total = total.Add(s.PotentialSavings)
		}
	}
	return total
}

// TotalPotentialSavings sums potential savings over every record.
func TotalPotentialSavings(scored []models.ScoredRecord) decimal.Decimal {
	total := decimal.Zero
	for _, s := range scored {
		total = total.Add(s.PotentialSavings)
	}
	return total
}

// SelectedRecords returns the selected records in input order.
func SelectedRecords(scored []models.ScoredRecord, selected map[string]struct{}) []models.ScoredRecord {
	result := make([]models.ScoredRecord, 0, len(selected))
	if len(selected) == 0 {
		return result
	}

	for _, s := range scored {
		if _, ok := selected[s.ID]; ok {
			result = append(result, s)
		}
	}
	return result
}

// Filter keeps the records matching any facet enabled in filter.
func Filter(scored []models.ScoredRecord, filter models.RecordFilter) []models.ScoredRecord {
	result := make([]models.ScoredRecord, 0, len(scored))
	for _, s := range scored {
		if filter.Matches(s) {
			result = append(result, s)
		}
	}
	return result
}

// SelectionSet builds a lookup set from a list of record ids.
func SelectionSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
