// Package processor turns one raw statement table into a cleaned list of
// transactions: validation, fragment merging, date and numeric
// normalization. All per-cell and per-row problems are recovered locally.
package processor

import (
	"log/slog"
	"strings"
	"time"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/statement"
)

// Canonical column positions after restriction to the first six columns.
const (
	colDate = iota
	colDescription
	colDocument
	colCredit
	colDebit
	colBalance
)

// ProcessFile reads one statement export and returns its cleaned
// transactions. A file that fails validation or yields zero valid rows
// returns (nil, nil): an expected outcome when the directory holds
// unrelated documents. Errors are reserved for unexpected read failures.
func ProcessFile(file statement.FileInfo, cfg *config.Config) ([]model.Transaction, error) {
	st := cfg.Statement
	slog.Debug("processing file", "file", file.Name)

	table, err := statement.ReadTable(file.Path, st.HeaderRow)
	if err != nil {
		return nil, err
	}

	if !Validate(table, file.Name, &st) {
		return nil, nil
	}

	rows := restrictColumns(table, st.MinColumns)
	rows = dropNoiseRows(rows, st.Columns[colDate])
	rows = MergeRows(rows, st.IgnoreWords)

	var txns []model.Transaction
	for _, row := range rows {
		date, err := time.Parse(st.DateFormat, strings.TrimSpace(row[colDate]))
		if err != nil {
			slog.Debug("dropping row with unparseable date", "file", file.Name, "cell", row[colDate])
			continue
		}

		credit := ParseAmount(row[colCredit]).Abs()
		debit := ParseAmount(row[colDebit]).Abs().Neg()
		value := credit.Add(debit)
		if value.IsZero() {
			// No-value row (balance echo or offsetting pair), nothing to ledger.
			continue
		}

		txns = append(txns, model.Transaction{
			Date:          date,
			Description:   strings.TrimSpace(row[colDescription]),
			Document:      strings.TrimSpace(row[colDocument]),
			Credit:        credit,
			Debit:         debit,
			Value:         value,
			StatedBalance: ParseAmount(row[colBalance]),
			SourceFile:    file.Name,
		})
	}

	if len(txns) == 0 {
		slog.Warn("no valid transactions in file", "file", file.Name)
		return nil, nil
	}

	slog.Debug("processed file", "file", file.Name, "transactions", len(txns))
	return txns, nil
}

// restrictColumns keeps only the first n cells of every data row.
func restrictColumns(t *statement.Table, n int) [][]string {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		clipped := make([]string, n)
		copy(clipped, row)
		rows = append(rows, clipped)
	}
	return rows
}

// dropNoiseRows removes literal header repeats (the export re-prints the
// column row mid-file) and rows with neither date nor description.
func dropNoiseRows(rows [][]string, dateHeader string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(row[colDate]) == dateHeader {
			continue
		}
		if strings.TrimSpace(row[colDate]) == "" && strings.TrimSpace(row[colDescription]) == "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
