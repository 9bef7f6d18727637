package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/quality"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

const missingCell = "-"

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: --format must be table, json or yaml, got %q", errInvalidFlag, format)
	}
}

func writeReport(w io.Writer, format string, report *scoreReport) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeTable(w, report)
	}
}

func writeTable(w io.Writer, report *scoreReport) error {
	s := report.Summary
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Input:\t%s\n", report.Input)
	fmt.Fprintf(tw, "Fee rate:\t%s\n", report.FeeRate.String())
	fmt.Fprintf(tw, "Transactions:\t%d\n", s.TotalTransactions)
	fmt.Fprintf(tw, "Complete:\t%d (%d%%)\n", s.CompletedTransactions, quality.CompletionPercent(s.CompletionRatio))
	fmt.Fprintf(tw, "Missing zip code:\t%d\n", s.MissingPostalCodes)
	fmt.Fprintf(tw, "Missing tax ID:\t%d\n", s.MissingTaxIDs)
	fmt.Fprintf(tw, "Potential savings:\t%s\n", quality.FormatCurrency(s.TotalPotentialSavings))
	fmt.Fprintf(tw, "Realized savings:\t%s\n", quality.FormatCurrency(s.RealizedSavings))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", s.CompletionCaption)

	if len(s.TopMerchants) > 0 {
		fmt.Fprintf(w, "\nTop merchants by potential savings\n")
		if err := writeMerchants(w, s.TopMerchants); err != nil {
			return err
		}
	}

	if report.Facets != nil {
		fmt.Fprintf(w, "\nRecords (%d, showing %v)\n", len(report.Records), report.Facets)
		if err := writeRecords(w, report.Records); err != nil {
			return err
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  %s\n", warning.String())
		}
	}

	return nil
}

func writeMerchants(w io.Writer, merchants []models.MerchantSavings) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MERCHANT\tSAVINGS\tTRANSACTIONS\tMISSING\t")
	for _, m := range merchants {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t\n",
			m.Merchant, quality.FormatCurrency(m.TotalSavings), m.TransactionCount, m.MissingCount)
	}
	return tw.Flush()
}

func writeRecords(w io.Writer, records []models.ScoredRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRANSACTION ID\tMERCHANT\tAMOUNT\tZIP CODE\tTAX ID\tDATE\tPOTENTIAL SAVINGS")
	for _, r := range records {
		date := missingCell
		if r.Date != nil {
			date = loader.FormatDate(*r.Date)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Merchant,
			quality.FormatCurrency(r.Amount),
			cellOrMissing(r.PostalCode),
			cellOrMissing(r.TaxID),
			date,
			quality.FormatCurrency(r.PotentialSavings))
	}
	return tw.Flush()
}

func cellOrMissing(value *string) string {
	if quality.IsAbsent(value) {
		return missingCell
	}
	return *value
}
