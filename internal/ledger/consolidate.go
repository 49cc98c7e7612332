// Package ledger merges per-file transaction sets into one chronologically
// ordered, deduplicated ledger with a recomputed running balance, and
// handles the ledger's CSV form.
package ledger

import (
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// Consolidate flattens the per-file sets, drops duplicates from
// overlapping export windows, sorts chronologically (credits before debits
// on the same date) and recomputes the running balance. An empty input
// yields an empty ledger; the caller decides whether that is fatal.
func Consolidate(sets [][]model.Transaction) []model.Transaction {
	var all []model.Transaction
	for _, set := range sets {
		all = append(all, set...)
	}
	if len(all) == 0 {
		return nil
	}

	all = dedupe(all)
	sortChronological(all)
	recomputeBalance(all)
	return all
}

// dedupe keeps the first occurrence of each (date, description, document,
// value) tuple.
func dedupe(txns []model.Transaction) []model.Transaction {
	seen := make(map[model.DedupKey]struct{}, len(txns))
	kept := txns[:0]
	dropped := 0
	for _, t := range txns {
		key := t.Key()
		if _, ok := seen[key]; ok {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, t)
	}
	if dropped > 0 {
		slog.Debug("dropped duplicate transactions", "count", dropped)
	}
	return kept
}

// sortChronological orders by date ascending; on the same date,
// non-negative values sort before negative ones.
func sortChronological(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return orderClass(txns[i]) < orderClass(txns[j])
	})
}

func orderClass(t model.Transaction) int {
	if t.Value.Sign() >= 0 {
		return 0
	}
	return 1
}

// recomputeBalance derives every balance from transaction deltas. The
// opening balance is seeded from the first transaction with a non-zero
// stated balance (that balance minus the row's own value); with no such
// row it defaults to zero.
func recomputeBalance(txns []model.Transaction) {
	opening := decimal.Zero
	for _, t := range txns {
		if !t.StatedBalance.IsZero() {
			opening = t.StatedBalance.Sub(t.Value)
			break
		}
	}

	running := opening
	for i := range txns {
		running = running.Add(txns[i].Value)
		txns[i].Balance = running.Round(2)
	}
}
