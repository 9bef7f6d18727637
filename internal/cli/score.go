package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/config"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/models"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/quality"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var errInvalidFlag = errors.New("invalid flag value")

type scoreOptions struct {
	input   string
	feeRate string
	top     int
	fixed   []string
	show    string
	format  string
	sheet   string
	maxRows int
}

// scoreReport is the machine readable output of the score command.
type scoreReport struct {
	Input    string                `json:"input" yaml:"input"`
	FeeRate  decimal.Decimal       `json:"fee_rate" yaml:"fee_rate"`
	Summary  *quality.Summary      `json:"summary" yaml:"summary"`
	Facets   []string              `json:"facets,omitempty" yaml:"facets,omitempty"`
	Records  []models.ScoredRecord `json:"records,omitempty" yaml:"records,omitempty"`
	Warnings []loader.RowWarning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newScoreCommand() *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a CSV or XLSX transaction table",
		Long: `score loads a table with the columns Transaction ID, Merchant, Amount,
Zip Code and Tax ID, flags records missing a zip code or tax ID, and reports
completion, per-merchant potential savings and the savings realized by the
transactions listed with --fixed.

A table missing a required column exits with status 2.`,
		Example: `  explorer score --input march.csv
  explorer score --input march.xlsx --fixed TXN-100001,TXN-100007 --format json
  explorer score --input march.csv --show missing_tax_id --top 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runScore(opts)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), opts.format, report)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to a .csv, .tsv or .xlsx table")
	cmd.Flags().StringVar(&opts.feeRate, "fee-rate", "", "Fee rate recovered per complete transaction (default $FEE_RATE or "+config.DefaultFeeRate+")")
	cmd.Flags().IntVar(&opts.top, "top", quality.DefaultTopMerchants, "Number of merchants in the top savings list")
	cmd.Flags().StringSliceVar(&opts.fixed, "fixed", nil, "Transaction IDs whose missing data has been fixed")
	cmd.Flags().StringVar(&opts.show, "show", "", "List scored records matching facets: missing_zip, missing_tax_id, complete, all")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "Output format: table, json or yaml")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet to read from an XLSX workbook (default first sheet)")
	cmd.Flags().IntVar(&opts.maxRows, "max-rows", 0, "Reject tables with more data rows than this (0 means unlimited)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runScore(opts *scoreOptions) (*scoreReport, error) {
	if err := validateFormat(opts.format); err != nil {
		return nil, err
	}
	if opts.top <= 0 {
		return nil, fmt.Errorf("%w: --top must be positive", errInvalidFlag)
	}

	feeRate, err := resolveFeeRate(opts.feeRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidFlag, err)
	}

	var filter *models.RecordFilter
	if opts.show != "" {
		parsed, err := models.ParseRecordFilter(opts.show)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidFlag, err)
		}
		filter = &parsed
	}

	file, err := os.Open(opts.input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	result, err := loader.Load(filepath.Base(opts.input), file, loader.Options{
		Sheet:   opts.sheet,
		MaxRows: opts.maxRows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", opts.input, err)
	}

	scored := quality.Score(result.Records, feeRate)

	report := &scoreReport{
		Input:    opts.input,
		FeeRate:  feeRate,
		Summary:  quality.Summarize(scored, quality.SelectionSet(opts.fixed), opts.top),
		Warnings: result.Warnings,
	}
	if filter != nil {
		report.Facets = filter.Facets()
		report.Records = quality.Filter(scored, *filter)
	}

	return report, nil
}

// resolveFeeRate prefers the flag, then FEE_RATE, then the default rate.
func resolveFeeRate(flagValue string) (decimal.Decimal, error) {
	raw := flagValue
	if raw == "" {
		raw = os.Getenv("FEE_RATE")
	}
	if raw == "" {
		raw = config.DefaultFeeRate
	}
	return config.ParseFeeRate(raw)
}
