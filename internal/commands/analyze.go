package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/analytics"
	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/ledger"
)

func newAnalyzeCommand() *cobra.Command {
	var input, output, configPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Attach categories, trends and anomalies to a consolidated ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, input, output, configPath)
		},
	}

	cmd.Flags().StringVar(&input, "input", "output/ledger.csv", "consolidated ledger CSV")
	cmd.Flags().StringVar(&output, "output", "output/analytics.csv", "decorated ledger CSV path")
	cmd.Flags().StringVar(&configPath, "config", "extrato.yaml", "configuration file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, input, output, configPath string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	format := outputFormat(cfg)

	txns, err := ledger.ReadFile(input, format)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		slog.Warn("ledger is empty, nothing to analyze", "file", input)
		return nil
	}

	cat := analytics.NewCategorizer(cfg.Categories, cfg.Analytics.DefaultCategory)
	txns = analytics.Decorate(txns, cat)
	txns = analytics.AttachMovingAverages(txns, cfg.Analytics.MovingAverageWindow)
	txns = analytics.DetectAnomalies(txns, cfg.Analytics.AnomalyThreshold)

	if err := ledger.WriteDecoratedFile(output, txns, format); err != nil {
		return fmt.Errorf("writing analytics (close it if open elsewhere): %w", err)
	}
	slog.Info("analytics written", "file", output, "transactions", len(txns))

	m := analytics.Calculate(txns)
	cmd.Printf("Savings rate:         %.1f%%\n", m.SavingsRate)
	cmd.Printf("Burn rate:            %.2f/month\n", m.BurnRate)
	cmd.Printf("Runway:               %.1f months\n", m.RunwayMonths)
	cmd.Printf("Cash days:            %.0f\n", m.CashDays)
	cmd.Printf("Income/expense ratio: %.2f\n", m.IncomeExpenseRatio)
	cmd.Printf("Volatility:           %.1f%%\n", m.Volatility)

	return nil
}
