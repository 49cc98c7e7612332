package commands

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/ledger"
	"github.com/extrato-dev/extrato/internal/processor"
	"github.com/extrato-dev/extrato/internal/statement"
)

func newConsolidateCommand() *cobra.Command {
	var inputDir, output, configPath string

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge statement exports into one chronological ledger CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsolidate(inputDir, output, configPath)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "statements", "directory of statement exports")
	cmd.Flags().StringVar(&output, "output", "output/ledger.csv", "consolidated ledger CSV path")
	cmd.Flags().StringVar(&configPath, "config", "extrato.yaml", "configuration file")

	return cmd
}

func runConsolidate(inputDir, output, configPath string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	files, err := statement.Scan(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		slog.Warn("no statement files found", "dir", inputDir)
		return nil
	}

	slog.Info("processing statement files", "count", len(files))
	sets := processor.ProcessAll(files, cfg)
	if len(sets) == 0 {
		slog.Warn("no valid data found")
		return nil
	}

	txns := ledger.Consolidate(sets)
	if len(txns) == 0 {
		slog.Warn("consolidated ledger is empty")
		return nil
	}

	if err := ledger.WriteFile(output, txns, outputFormat(cfg)); err != nil {
		return fmt.Errorf("writing ledger (close it if open elsewhere): %w", err)
	}

	slog.Info("ledger written with recomputed balances", "file", output, "transactions", len(txns))
	return nil
}

// outputFormat maps the config's CSV convention onto the writer.
func outputFormat(cfg *config.Config) ledger.Format {
	f := ledger.DefaultFormat
	if cfg.Output.Separator != "" {
		sep, _ := utf8.DecodeRuneInString(cfg.Output.Separator)
		if sep != utf8.RuneError {
			f.Separator = sep
		}
	}
	if cfg.Output.DecimalMark != "" {
		f.DecimalMark = cfg.Output.DecimalMark
	}
	return f
}
