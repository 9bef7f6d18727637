package loader

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/quality"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LoaderTestSuite struct {
	suite.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

const validCSV = `Transaction ID,Merchant,Amount,Zip Code,Tax ID,Date
TXN-100000,Amazon,120.50,10001,TX123,2024-03-01 10:00:00
TXN-100001,Walmart,42.00,,TX456,2024-03-02
TXN-100002,Nike,15.25,30301,,
TXN-100003,Uber,7.00,   ,  ,not-a-date
`

func (s *LoaderTestSuite) TestLoadCSV_Valid() {
	result, err := LoadCSV(strings.NewReader(validCSV), Options{})
	s.Require().NoError(err)

	s.Equal(4, result.TotalRows)
	s.Equal(0, result.SkippedRows)
	s.True(result.HasDates)
	s.Require().Len(result.Records, 4)

	first := result.Records[0]
	s.Equal("TXN-100000", first.ID)
	s.Equal("Amazon", first.Merchant)
	s.True(first.Amount.Equal(decimal.RequireFromString("120.50")))
	s.Equal("10001", models.StringValue(first.PostalCode))
	s.Equal("TX123", models.StringValue(first.TaxID))
	s.Require().NotNil(first.Date)
	s.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), *first.Date)

	s.Nil(result.Records[1].PostalCode)
	s.Nil(result.Records[2].TaxID)
	s.Nil(result.Records[2].Date)
}

func (s *LoaderTestSuite) TestLoadCSV_BlankCellsNormalizeToNil() {
	result, err := LoadCSV(strings.NewReader(validCSV), Options{})
	s.Require().NoError(err)

	last := result.Records[3]
	s.Nil(last.PostalCode)
	s.Nil(last.TaxID)
	s.Nil(last.Date)

	s.Require().Len(result.Warnings, 1)
	s.Equal(ReasonInvalidDate, result.Warnings[0].Reason)
	s.Equal(5, result.Warnings[0].Line)
	s.False(result.Warnings[0].Skipped)
}

func (s *LoaderTestSuite) TestLoadCSV_MissingColumns() {
	input := "Transaction ID,Merchant,Amount\nTXN-1,Acme,10\n"

	result, err := LoadCSV(strings.NewReader(input), Options{})

	s.Nil(result)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrMissingColumns))

	var colErr *ColumnError
	s.Require().True(errors.As(err, &colErr))
	s.Equal([]string{"Zip Code", "Tax ID"}, colErr.Missing)
	s.Contains(err.Error(), "Zip Code")
	s.Contains(err.Error(), "Tax ID")
}

func (s *LoaderTestSuite) TestLoadCSV_HeaderAliases() {
	input := "id,merchant_name,AMOUNT,postal_code,tax-id\nA,Acme,1.00,10001,TX1\n"

	result, err := LoadCSV(strings.NewReader(input), Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Equal("A", result.Records[0].ID)
	s.False(result.HasDates)
}

func (s *LoaderTestSuite) TestLoadCSV_MalformedRowsAreSkipped() {
	input := `Transaction ID,Merchant,Amount,Zip Code,Tax ID
A,Acme,ten dollars,10001,TX1
B,Acme,-5,10001,TX1
,Acme,5,10001,TX1
C,,5,10001,TX1
D,Acme,"$1,250.75",10001,TX1
`

	result, err := LoadCSV(strings.NewReader(input), Options{})
	s.Require().NoError(err)

	s.Equal(5, result.TotalRows)
	s.Equal(4, result.SkippedRows)
	s.Require().Len(result.Records, 1)
	s.Equal("D", result.Records[0].ID)
	s.True(result.Records[0].Amount.Equal(decimal.RequireFromString("1250.75")))

	reasons := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		s.True(w.Skipped)
		reasons = append(reasons, w.Reason)
	}
	s.Equal([]string{ReasonInvalidAmount, ReasonNegativeAmount, ReasonMissingID, ReasonMissingMerch}, reasons)
}

func (s *LoaderTestSuite) TestLoadCSV_DuplicateIDsKeptWithWarning() {
	input := "Transaction ID,Merchant,Amount,Zip Code,Tax ID\nA,Acme,1,,\nA,Acme,2,,\n"

	result, err := LoadCSV(strings.NewReader(input), Options{})
	s.Require().NoError(err)
	s.Len(result.Records, 2)
	s.Require().Len(result.Warnings, 1)
	s.Equal(ReasonDuplicateID, result.Warnings[0].Reason)
}

func (s *LoaderTestSuite) TestLoadCSV_Empty() {
	_, err := LoadCSV(strings.NewReader(""), Options{})
	s.ErrorIs(err, ErrEmptyInput)
}

func (s *LoaderTestSuite) TestLoadCSV_HeaderOnly() {
	result, err := LoadCSV(strings.NewReader("Transaction ID,Merchant,Amount,Zip Code,Tax ID\n"), Options{})
	s.Require().NoError(err)
	s.Empty(result.Records)
	s.Equal(0, result.TotalRows)
}

func (s *LoaderTestSuite) TestLoadCSV_MaxRows() {
	_, err := LoadCSV(strings.NewReader(validCSV), Options{MaxRows: 2})
	s.ErrorIs(err, ErrTooManyRows)
}

func (s *LoaderTestSuite) TestLoadCSV_CustomDelimiter() {
	input := "Transaction ID;Merchant;Amount;Zip Code;Tax ID\nA;Acme;3.50;10001;\n"

	result, err := LoadCSV(strings.NewReader(input), Options{Delimiter: ';'})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Nil(result.Records[0].TaxID)
}

func (s *LoaderTestSuite) TestLoad_DispatchesOnExtension() {
	tsv := "Transaction ID\tMerchant\tAmount\tZip Code\tTax ID\nA\tAcme\t1\t10001\tTX1\n"

	result, err := Load("upload.TSV", strings.NewReader(tsv), Options{})
	s.Require().NoError(err)
	s.Len(result.Records, 1)

	_, err = Load("upload.pdf", strings.NewReader(tsv), Options{})
	s.ErrorIs(err, ErrUnsupportedType)
}

func (s *LoaderTestSuite) TestXLSX_RoundTrip() {
	date := time.Date(2024, 5, 17, 8, 30, 0, 0, time.UTC)
	records := []models.TransactionRecord{
		{ID: "TXN-1", Merchant: "Costco", Amount: decimal.RequireFromString("99.99"), PostalCode: models.StringPtr("60601"), TaxID: models.StringPtr("TX789"), Date: &date},
		{ID: "TXN-2", Merchant: "Apple", Amount: decimal.RequireFromString("450"), PostalCode: nil, TaxID: models.StringPtr("TX123")},
	}

	var buf bytes.Buffer
	s.Require().NoError(WriteXLSX(&buf, records))

	result, err := Load("export.xlsx", &buf, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 2)

	s.Equal("TXN-1", result.Records[0].ID)
	s.True(result.Records[0].Amount.Equal(decimal.RequireFromString("99.99")))
	s.Require().NotNil(result.Records[0].Date)
	s.True(date.Equal(*result.Records[0].Date))
	s.Nil(result.Records[1].PostalCode)
	s.Equal("TX123", models.StringValue(result.Records[1].TaxID))
}

func (s *LoaderTestSuite) TestXLSX_UnknownSheet() {
	var buf bytes.Buffer
	s.Require().NoError(WriteXLSX(&buf, nil))

	_, err := LoadXLSX(&buf, Options{Sheet: "Nope"})
	s.ErrorIs(err, ErrUnreadable)
}

func (s *LoaderTestSuite) TestXLSX_NotAWorkbook() {
	_, err := LoadXLSX(strings.NewReader("plain text"), Options{})
	s.ErrorIs(err, ErrUnreadable)
}

func (s *LoaderTestSuite) TestCSV_RoundTrip() {
	records := []models.TransactionRecord{
		{ID: "TXN-1", Merchant: "Best Buy", Amount: decimal.RequireFromString("10.5")},
	}

	var buf bytes.Buffer
	s.Require().NoError(WriteCSV(&buf, records))
	s.True(strings.HasPrefix(buf.String(), "Transaction ID,Merchant,Amount,Zip Code,Tax ID,Date\n"))

	result, err := LoadCSV(&buf, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Equal("Best Buy", result.Records[0].Merchant)
	s.Nil(result.Records[0].PostalCode)
	s.Nil(result.Records[0].TaxID)
}

func (s *LoaderTestSuite) TestTSV_RoundTrip() {
	records := []models.TransactionRecord{
		{ID: "TXN-2", Merchant: "Home Depot, Inc", Amount: decimal.RequireFromString("7"), TaxID: models.StringPtr("12-3456789")},
	}

	var buf bytes.Buffer
	s.Require().NoError(WriteTSV(&buf, records))
	s.True(strings.HasPrefix(buf.String(), "Transaction ID\tMerchant\tAmount"))

	result, err := Load("export.tsv", &buf, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Equal("Home Depot, Inc", result.Records[0].Merchant)
	s.Equal("12-3456789", *result.Records[0].TaxID)
}

func (s *LoaderTestSuite) TestTSV_EmptyCellKeepsColumnPositions() {
	input := "Transaction ID\tMerchant\tAmount\tZip Code\tTax ID\tDate\n" +
		"T1\tAcme\t100\t\tTX1\t2024-03-01\n" +
		"T2\tAcme\t50\t94105\t\t\n"

	result, err := Load("march.tsv", strings.NewReader(input), Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 2)

	first := result.Records[0]
	s.Nil(first.PostalCode)
	s.Equal("TX1", models.StringValue(first.TaxID))
	s.Require().NotNil(first.Date)

	second := result.Records[1]
	s.Equal("94105", models.StringValue(second.PostalCode))
	s.Nil(second.TaxID)
	s.Empty(result.Warnings)
}

func (s *LoaderTestSuite) TestTSV_GeneratedTableWithGaps() {
	records := []models.TransactionRecord{
		{ID: "TXN-1", Merchant: "Target", Amount: decimal.RequireFromString("20"), TaxID: models.StringPtr("98-7654321")},
		{ID: "TXN-2", Merchant: "Target", Amount: decimal.RequireFromString("30"), PostalCode: models.StringPtr("10001")},
	}

	var buf bytes.Buffer
	s.Require().NoError(WriteTSV(&buf, records))

	result, err := Load("gaps.tsv", &buf, Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 2)
	s.Nil(result.Records[0].PostalCode)
	s.Equal("98-7654321", models.StringValue(result.Records[0].TaxID))
	s.Equal("10001", models.StringValue(result.Records[1].PostalCode))
	s.Nil(result.Records[1].TaxID)
}

func (s *LoaderTestSuite) TestNullTokensAgreeWithIsAbsent() {
	tokens := []string{"", "  ", "nan", "NaN", "null", "NULL", "None", "NA", "N/A", "n/a", "<NA>", "#N/A", "none", "0", "NAN-1"}

	for _, token := range tokens {
		s.Run(token, func() {
			input := "Transaction ID,Merchant,Amount,Zip Code,Tax ID\nT1,Acme,100,\"" + token + "\",TX1\n"
			result, err := LoadCSV(strings.NewReader(input), Options{})
			s.Require().NoError(err)
			s.Require().Len(result.Records, 1)

			loadedMissing := result.Records[0].PostalCode == nil
			s.Equal(quality.IsAbsentValue(token), loadedMissing)
			s.Equal(quality.IsAbsent(models.StringPtr(token)), loadedMissing)
		})
	}
}

func (s *LoaderTestSuite) TestNoneAndNaNCellsAreMissing() {
	input := "Transaction ID,Merchant,Amount,Zip Code,Tax ID\nT1,Acme,100,None,nan\n"

	result, err := LoadCSV(strings.NewReader(input), Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Nil(result.Records[0].PostalCode)
	s.Nil(result.Records[0].TaxID)
}

func (s *LoaderTestSuite) TestCSV_WarningLinesFollowMultilineFields() {
	input := "Transaction ID,Merchant,Amount,Zip Code,Tax ID\n" +
		"T1,\"Acme\nWarehouse\",10,10001,TX1\n" +
		"T2,Bolt,abc,10001,TX2\n"

	result, err := LoadCSV(strings.NewReader(input), Options{})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Equal("Acme\nWarehouse", result.Records[0].Merchant)
	s.Require().Len(result.Warnings, 1)
	s.Equal(4, result.Warnings[0].Line)
	s.Equal(ReasonInvalidAmount, result.Warnings[0].Reason)
}

func (s *LoaderTestSuite) TestParseAmount() {
	tests := map[string]string{
		"12":        "12",
		" 12.50 ":   "12.5",
		"$1,000.01": "1000.01",
	}
	for raw, want := range tests {
		got, err := ParseAmount(raw)
		s.Require().NoError(err, raw)
		s.True(got.Equal(decimal.RequireFromString(want)), raw)
	}

	_, err := ParseAmount("")
	s.Error(err)
	_, err = ParseAmount("abc")
	s.Error(err)
}
