package loader

import "strings"

// Column identifies a logical input column.
type Column string

const (
	ColumnTransactionID Column = "transaction_id"
	ColumnMerchant      Column = "merchant"
	ColumnAmount        Column = "amount"
	ColumnPostalCode    Column = "zip_code"
	ColumnTaxID         Column = "tax_id"
	ColumnDate          Column = "date"
)

// Header names written by the exporter and shown in validation messages.
var columnHeaders = map[Column]string{
	ColumnTransactionID: "Transaction ID",
	ColumnMerchant:      "Merchant",
	ColumnAmount:        "Amount",
	ColumnPostalCode:    "Zip Code",
	ColumnTaxID:         "Tax ID",
	ColumnDate:          "Date",
}

// RequiredColumns must all be present in an uploaded table.
var RequiredColumns = []Column{
	ColumnTransactionID,
	ColumnMerchant,
	ColumnAmount,
	ColumnPostalCode,
	ColumnTaxID,
}

// ExportColumns is the header order used when writing tables.
var ExportColumns = []Column{
	ColumnTransactionID,
	ColumnMerchant,
	ColumnAmount,
	ColumnPostalCode,
	ColumnTaxID,
	ColumnDate,
}

var columnAliases = map[string]Column{
	"transaction_id":   ColumnTransactionID,
	"txn_id":           ColumnTransactionID,
	"id":               ColumnTransactionID,
	"merchant":         ColumnMerchant,
	"merchant_name":    ColumnMerchant,
	"amount":           ColumnAmount,
	"zip_code":         ColumnPostalCode,
	"zip":              ColumnPostalCode,
	"postal_code":      ColumnPostalCode,
	"postcode":         ColumnPostalCode,
	"tax_id":           ColumnTaxID,
	"tin":              ColumnTaxID,
	"date":             ColumnDate,
	"transaction_date": ColumnDate,
}

// Header returns the display header of a column.
func (c Column) Header() string {
	if h, ok := columnHeaders[c]; ok {
		return h
	}
	return string(c)
}

// RequiredHeaders returns the display names of the required columns.
func RequiredHeaders() []string {
	headers := make([]string, len(RequiredColumns))
	for i, c := range RequiredColumns {
		headers[i] = c.Header()
	}
	return headers
}

// normalizeHeader maps "Transaction ID", "transaction-id" and
// " TRANSACTION_ID " to the same key.
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	return h
}

// resolveColumns maps each known column to its index in headers. The first
// occurrence wins when a column appears twice.
func resolveColumns(headers []string) map[Column]int {
	positions := make(map[Column]int)
	for i, header := range headers {
		col, ok := columnAliases[normalizeHeader(header)]
		if !ok {
			continue
		}
		if _, seen := positions[col]; !seen {
			positions[col] = i
		}
	}
	return positions
}

func missingColumns(positions map[Column]int) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := positions[col]; !ok {
			missing = append(missing, col.Header())
		}
	}
	return missing
}
