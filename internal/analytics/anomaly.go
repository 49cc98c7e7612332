package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/extrato-dev/extrato/internal/model"
)

// Anomaly labels.
const (
	AnomalyNormal  = "Normal"
	AnomalyFlagged = "Anomaly"
)

// DefaultAnomalyThreshold is the z-score above which a transaction is
// flagged.
const DefaultAnomalyThreshold = 2.0

// DetectAnomalies flags per-category outliers by z-score over absolute
// transaction values. Categories with fewer than three transactions or no
// variance are skipped; their transactions stay Normal. Each category is
// scored independently. Requires a Decorate()d ledger.
func DetectAnomalies(txns []model.Transaction, threshold float64) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	byCategory := make(map[string][]int)
	for i := range out {
		out[i].Anomaly = AnomalyNormal
		byCategory[out[i].Category] = append(byCategory[out[i].Category], i)
	}

	for _, indices := range byCategory {
		if len(indices) < 3 {
			continue
		}

		values := make([]float64, len(indices))
		for i, idx := range indices {
			values[i] = out[idx].Value.Abs().InexactFloat64()
		}

		mean := stat.Mean(values, nil)
		std := stat.StdDev(values, nil)
		if std == 0 {
			continue
		}

		for i, idx := range indices {
			z := math.Abs(values[i]-mean) / std
			if z > threshold {
				out[idx].Anomaly = AnomalyFlagged
			}
		}
	}
	return out
}
