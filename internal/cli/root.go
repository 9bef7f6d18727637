package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/config"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/loader"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=1.2.3".
var Version = "dev"

// Exit codes returned by main.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

type globalOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCommand builds the explorer command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "explorer",
		Short: "Transaction data quality and savings explorer",
		Long: `explorer scores transaction tables for missing reference data
(zip code, tax ID) and estimates the processing fees that completing them
would save.

  explorer serve                         run the dashboard API
  explorer score --input march.csv       score a CSV or XLSX file
  explorer generate --rows 1000 --seed 7 write a synthetic table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging := config.LoadLogging()
			if opts.logLevel != "" {
				logging.Level = opts.logLevel
			}
			if opts.logFormat != "" {
				logging.Format = opts.logFormat
			}
			logger, err := newLogger(logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (default $LOG_FORMAT or text)")

	root.AddCommand(
		newServeCommand(),
		newScoreCommand(),
		newGenerateCommand(),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "explorer %s (%s)\n", Version, runtime.Version())
			return err
		},
	}
}

// ExitCode maps a command error to a process exit code. Tables rejected by
// the loader exit with ExitInvalidInput.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, loader.ErrMissingColumns),
		errors.Is(err, loader.ErrEmptyInput),
		errors.Is(err, loader.ErrUnsupportedType),
		errors.Is(err, loader.ErrTooManyRows),
		errors.Is(err, loader.ErrUnreadable),
		errors.Is(err, errInvalidFlag):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

// Execute runs the command tree with args and returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCode(err)
	}
	return ExitOK
}
