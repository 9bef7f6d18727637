package quality

import (
	"testing"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PipelineTestSuite struct {
	suite.Suite
	feeRate decimal.Decimal
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	s.feeRate = decimal.RequireFromString("0.005")
}

func record(id, merchant, amount string, zip, taxID *string) models.TransactionRecord {
	return models.TransactionRecord{
		ID:         id,
		Merchant:   merchant,
		Amount:     decimal.RequireFromString(amount),
		PostalCode: zip,
		TaxID:      taxID,
	}
}

func scoredWithSavings(id, merchant, savings string) models.ScoredRecord {
	return models.ScoredRecord{
		TransactionRecord: models.TransactionRecord{ID: id, Merchant: merchant},
		HasMissingInfo:    true,
		MissingPostalCode: true,
		PotentialSavings:  decimal.RequireFromString(savings),
	}
}

// IsAbsent

func (s *PipelineTestSuite) TestIsAbsent() {
	s.True(IsAbsent(nil))
	s.True(IsAbsent(models.StringPtr("")))
	s.True(IsAbsent(models.StringPtr("   \t")))
	s.False(IsAbsent(models.StringPtr("10001")))
	s.False(IsAbsent(models.StringPtr(" 0 ")))

	for _, token := range []string{"nan", "NaN", "null", "NULL", "None", "NA", "N/A", "<NA>", " nan "} {
		s.True(IsAbsent(models.StringPtr(token)), token)
	}
	s.False(IsAbsent(models.StringPtr("none")))
	s.False(IsAbsent(models.StringPtr("NAB")))
}

func (s *PipelineTestSuite) TestScore_NullTokensAreMissing() {
	scored := Score([]models.TransactionRecord{
		record("T1", "Acme", "100", models.StringPtr("None"), models.StringPtr("12-3456789")),
	}, DefaultFeeRate)

	s.True(scored[0].MissingPostalCode)
	s.False(scored[0].MissingTaxID)
	s.True(scored[0].PotentialSavings.Equal(decimal.RequireFromString("0.5")))
}

// Score

func (s *PipelineTestSuite) TestScore_MissingPostalCode() {
	scored := Score([]models.TransactionRecord{
		record("TXN-1", "Acme", "100", nil, models.StringPtr("TX1")),
	}, s.feeRate)

	s.Require().Len(scored, 1)
	r := scored[0]
	s.True(r.MissingPostalCode)
	s.False(r.MissingTaxID)
	s.True(r.HasMissingInfo)
	s.True(r.PotentialSavings.Equal(decimal.RequireFromString("0.50")), "got %s", r.PotentialSavings)
}

func (s *PipelineTestSuite) TestScore_CompleteRecordHasZeroSavings() {
	scored := Score([]models.TransactionRecord{
		record("TXN-2", "Acme", "200", models.StringPtr("10001"), models.StringPtr("TX1")),
	}, s.feeRate)

	s.Require().Len(scored, 1)
	s.False(scored[0].HasMissingInfo)
	s.True(scored[0].PotentialSavings.IsZero())
	s.Equal("0.00", scored[0].PotentialSavings.StringFixed(2))
}

func (s *PipelineTestSuite) TestScore_BlankAndNilAreEquivalent() {
	scored := Score([]models.TransactionRecord{
		record("A", "Acme", "40", nil, nil),
		record("B", "Acme", "40", models.StringPtr(""), models.StringPtr("  ")),
	}, s.feeRate)

	s.Equal(scored[0].MissingPostalCode, scored[1].MissingPostalCode)
	s.Equal(scored[0].MissingTaxID, scored[1].MissingTaxID)
	s.True(scored[0].PotentialSavings.Equal(scored[1].PotentialSavings))
}

func (s *PipelineTestSuite) TestScore_EmptyInput() {
	scored := Score(nil, s.feeRate)
	s.NotNil(scored)
	s.Empty(scored)
}

func (s *PipelineTestSuite) TestScore_PreservesOrderAndDoesNotMutateInput() {
	zip := models.StringPtr("30301")
	input := []models.TransactionRecord{
		record("C", "Zed", "10.10", zip, nil),
		record("A", "Acme", "20.20", nil, models.StringPtr("TX9")),
		record("B", "Acme", "30.30", zip, models.StringPtr("TX9")),
	}
	before := append([]models.TransactionRecord(nil), input...)

	scored := Score(input, s.feeRate)

	s.Equal(before, input)
	s.Require().Len(scored, 3)
	s.Equal("C", scored[0].ID)
	s.Equal("A", scored[1].ID)
	s.Equal("B", scored[2].ID)
}

func (s *PipelineTestSuite) TestScore_Invariants() {
	input := []models.TransactionRecord{
		record("1", "Amazon", "5.00", nil, nil),
		record("2", "Amazon", "499.99", models.StringPtr("94105"), nil),
		record("3", "Nike", "123.45", nil, models.StringPtr("TX456")),
		record("4", "Nike", "77.77", models.StringPtr("75201"), models.StringPtr("TX789")),
		record("5", "Uber", "0", nil, nil),
	}

	for _, r := range Score(input, s.feeRate) {
		s.Equal(r.MissingPostalCode || r.MissingTaxID, r.HasMissingInfo, r.ID)
		if r.HasMissingInfo {
			s.True(r.PotentialSavings.Equal(r.Amount.Mul(s.feeRate)), r.ID)
		} else {
			s.True(r.PotentialSavings.Equal(decimal.Zero), r.ID)
		}
	}
}

func (s *PipelineTestSuite) TestScore_Idempotent() {
	input := []models.TransactionRecord{
		record("1", "Amazon", "12.34", nil, models.StringPtr("TX123")),
		record("2", "Target", "56.78", models.StringPtr("60601"), nil),
	}

	s.Equal(Score(input, s.feeRate), Score(input, s.feeRate))
}

func (s *PipelineTestSuite) TestScore_ZeroFeeRate() {
	scored := Score([]models.TransactionRecord{record("1", "Acme", "100", nil, nil)}, decimal.Zero)
	s.True(scored[0].HasMissingInfo)
	s.True(scored[0].PotentialSavings.IsZero())
}

// CompletionRatio

func (s *PipelineTestSuite) TestCompletionRatio_EmptyIsComplete() {
	s.Equal(1.0, CompletionRatio(nil))
	s.Equal(1.0, CompletionRatio([]models.ScoredRecord{}))
}

func (s *PipelineTestSuite) TestCompletionRatio() {
	scored := Score([]models.TransactionRecord{
		record("1", "A", "1", nil, nil),
		record("2", "A", "1", models.StringPtr("10001"), models.StringPtr("TX1")),
		record("3", "A", "1", models.StringPtr("10001"), models.StringPtr("TX1")),
		record("4", "A", "1", models.StringPtr("10001"), nil),
	}, s.feeRate)

	s.InDelta(0.5, CompletionRatio(scored), 1e-12)
}

func (s *PipelineTestSuite) TestCompletionRatio_MonotonicAsRecordsAreFixed() {
	input := []models.TransactionRecord{
		record("1", "A", "1", nil, nil),
		record("2", "A", "1", nil, models.StringPtr("TX1")),
		record("3", "A", "1", models.StringPtr("10001"), nil),
		record("4", "A", "1", models.StringPtr("10001"), models.StringPtr("TX1")),
	}

	previous := CompletionRatio(Score(input, s.feeRate))
	for i := range input {
		input[i].PostalCode = models.StringPtr("10001")
		input[i].TaxID = models.StringPtr("TX1")

		current := CompletionRatio(Score(input, s.feeRate))
		s.GreaterOrEqual(current, previous)
		previous = current
	}
	s.Equal(1.0, previous)
}

// AggregateByMerchant

func (s *PipelineTestSuite) TestAggregateByMerchant_Scenario() {
	scored := []models.ScoredRecord{
		scoredWithSavings("1", "Acme", "1.00"),
		scoredWithSavings("2", "Zed", "0.50"),
		scoredWithSavings("3", "Acme", "2.50"),
	}

	result := AggregateByMerchant(scored)

	s.Require().Len(result, 2)
	s.Equal("Acme", result[0].Merchant)
	s.True(result[0].TotalSavings.Equal(decimal.RequireFromString("3.50")))
	s.Equal(2, result[0].TransactionCount)
	s.Equal("Zed", result[1].Merchant)
	s.True(result[1].TotalSavings.Equal(decimal.RequireFromString("0.50")))
}

func (s *PipelineTestSuite) TestAggregateByMerchant_TiesBrokenByName() {
	scored := []models.ScoredRecord{
		scoredWithSavings("1", "Walmart", "2.00"),
		scoredWithSavings("2", "Amazon", "2.00"),
		scoredWithSavings("3", "Costco", "2.00"),
		scoredWithSavings("4", "Nike", "9.00"),
	}

	result := AggregateByMerchant(scored)

	names := make([]string, len(result))
	for i, m := range result {
		names[i] = m.Merchant
	}
	s.Equal([]string{"Nike", "Amazon", "Costco", "Walmart"}, names)
}

func (s *PipelineTestSuite) TestAggregateByMerchant_CaseSensitive() {
	scored := []models.ScoredRecord{
		scoredWithSavings("1", "acme", "1.00"),
		scoredWithSavings("2", "Acme", "1.00"),
	}

	s.Len(AggregateByMerchant(scored), 2)
}

func (s *PipelineTestSuite) TestAggregateByMerchant_ConservesTotal() {
	input := []models.TransactionRecord{
		record("1", "Amazon", "10.01", nil, nil),
		record("2", "Walmart", "20.02", models.StringPtr("10001"), nil),
		record("3", "Amazon", "30.03", models.StringPtr("10001"), models.StringPtr("TX1")),
		record("4", "Uber", "40.04", nil, models.StringPtr("TX1")),
	}
	scored := Score(input, s.feeRate)

	sum := decimal.Zero
	for _, m := range AggregateByMerchant(scored) {
		sum = sum.Add(m.TotalSavings)
	}

	s.True(sum.Equal(TotalPotentialSavings(scored)))
}

func (s *PipelineTestSuite) TestAggregateByMerchant_Empty() {
	s.Empty(AggregateByMerchant(nil))
}

func (s *PipelineTestSuite) TestTopMerchants() {
	aggregates := AggregateByMerchant([]models.ScoredRecord{
		scoredWithSavings("1", "A", "6"),
		scoredWithSavings("2", "B", "5"),
		scoredWithSavings("3", "C", "4"),
	})

	s.Len(TopMerchants(aggregates, 2), 2)
	s.Len(TopMerchants(aggregates, 0), 3)
	s.Len(TopMerchants(aggregates, 10), 3)

	top := TopMerchants(aggregates, 1)
	top[0].Merchant = "changed"
	s.Equal("A", aggregates[0].Merchant)
}

// TotalSavingsForSelection

func (s *PipelineTestSuite) TestTotalSavingsForSelection() {
	scored := []models.ScoredRecord{
		scoredWithSavings("1", "Acme", "1.00"),
		scoredWithSavings("2", "Acme", "2.50"),
		scoredWithSavings("3", "Zed", "0.50"),
	}

	s.True(TotalSavingsForSelection(scored, SelectionSet(nil)).IsZero())
	s.True(TotalSavingsForSelection(scored, nil).IsZero())
	s.True(TotalSavingsForSelection(scored, SelectionSet([]string{"1", "3"})).Equal(decimal.RequireFromString("1.50")))
	s.True(TotalSavingsForSelection(scored, SelectionSet([]string{"1", "2", "3"})).Equal(TotalPotentialSavings(scored)))
}

func (s *PipelineTestSuite) TestTotalSavingsForSelection_UnknownIDsIgnored() {
	scored := []models.ScoredRecord{scoredWithSavings("1", "Acme", "1.00")}

	total := TotalSavingsForSelection(scored, SelectionSet([]string{"does-not-exist"}))
	s.True(total.IsZero())

	total = TotalSavingsForSelection(scored, SelectionSet([]string{"1", "ghost"}))
	s.True(total.Equal(decimal.RequireFromString("1.00")))
}

func (s *PipelineTestSuite) TestSelectedRecords_InputOrder() {
	scored := []models.ScoredRecord{
		scoredWithSavings("1", "Acme", "1.00"),
		scoredWithSavings("2", "Acme", "2.50"),
		scoredWithSavings("3", "Zed", "0.50"),
	}

	selected := SelectedRecords(scored, SelectionSet([]string{"3", "1", "x"}))

	s.Require().Len(selected, 2)
	s.Equal("1", selected[0].ID)
	s.Equal("3", selected[1].ID)
}

// Filter

func (s *PipelineTestSuite) TestFilter() {
	scored := Score([]models.TransactionRecord{
		record("zip", "A", "1", nil, models.StringPtr("TX1")),
		record("tax", "A", "1", models.StringPtr("10001"), nil),
		record("both", "A", "1", nil, nil),
		record("ok", "A", "1", models.StringPtr("10001"), models.StringPtr("TX1")),
	}, s.feeRate)

	ids := func(records []models.ScoredRecord) []string {
		out := make([]string, len(records))
		for i, r := range records {
			out[i] = r.ID
		}
		return out
	}

	s.Equal([]string{"zip", "tax", "both"}, ids(Filter(scored, models.DefaultRecordFilter())))
	s.Equal([]string{"zip", "both"}, ids(Filter(scored, models.RecordFilter{MissingZip: true})))
	s.Equal([]string{"ok"}, ids(Filter(scored, models.RecordFilter{Complete: true})))
	s.Equal([]string{"zip", "tax", "both", "ok"}, ids(Filter(scored, models.AllRecordsFilter())))
	s.Empty(Filter(scored, models.RecordFilter{}))
}
