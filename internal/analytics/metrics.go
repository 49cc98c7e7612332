package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/extrato-dev/extrato/internal/model"
)

// infiniteSentinel caps runway and cash-days when there is no outflow.
const infiniteSentinel = 999.0

// Metrics holds the derived financial indicators for a ledger.
type Metrics struct {
	SavingsRate        float64 // % of income retained, 1 decimal
	BurnRate           float64 // mean monthly outflow, 2 decimals
	RunwayMonths       float64 // months at current balance and burn, 1 decimal
	CashDays           float64 // days at current balance and daily outflow, whole days
	IncomeExpenseRatio float64 // total credits / total debits, 2 decimals
	Volatility         float64 // monthly net-flow dispersion, %, 1 decimal
}

// Calculate derives the metrics from a Decorate()d, chronologically sorted
// ledger. An empty ledger yields zero metrics.
func Calculate(txns []model.Transaction) Metrics {
	if len(txns) == 0 {
		return Metrics{}
	}

	var totalCredits, totalDebits float64
	for _, t := range txns {
		totalCredits += t.CreditAbs.InexactFloat64()
		totalDebits += t.DebitAbs.InexactFloat64()
	}
	currentBalance := txns[len(txns)-1].Balance.InexactFloat64()

	savingsRate := 0.0
	if totalCredits > 0 {
		savingsRate = (totalCredits - totalDebits) / totalCredits * 100
	}

	monthlyDebits := monthlySums(txns, func(t model.Transaction) float64 { return t.DebitAbs.InexactFloat64() })
	burnRate := stat.Mean(monthlyDebits, nil)

	runway := infiniteSentinel
	if burnRate > 0 {
		runway = math.Min(currentBalance/burnRate, infiniteSentinel)
	}

	days := 1.0
	if len(txns) > 1 {
		span := txns[len(txns)-1].Date.Sub(txns[0].Date)
		days = math.Floor(span.Hours()/24) + 1
	}
	cashDays := infiniteSentinel
	if dailyRate := totalDebits / days; dailyRate > 0 {
		cashDays = math.Min(currentBalance/dailyRate, infiniteSentinel)
	}

	ratio := 0.0
	if totalDebits > 0 {
		ratio = totalCredits / totalDebits
	}

	monthlyFlows := monthlySums(txns, func(t model.Transaction) float64 { return t.Value.InexactFloat64() })
	volatility := 0.0
	if len(monthlyFlows) > 1 {
		if mean := stat.Mean(monthlyFlows, nil); mean != 0 {
			volatility = stat.StdDev(monthlyFlows, nil) / math.Abs(mean) * 100
		}
	}

	return Metrics{
		SavingsRate:        roundTo(savingsRate, 1),
		BurnRate:           roundTo(burnRate, 2),
		RunwayMonths:       roundTo(runway, 1),
		CashDays:           roundTo(cashDays, 0),
		IncomeExpenseRatio: roundTo(ratio, 2),
		Volatility:         roundTo(volatility, 1),
	}
}

// monthlySums folds per-transaction values into one sum per year-month, in
// chronological order.
func monthlySums(txns []model.Transaction, value func(model.Transaction) float64) []float64 {
	var sums []float64
	index := make(map[string]int)
	for _, t := range txns {
		i, ok := index[t.YearMonth]
		if !ok {
			i = len(sums)
			index[t.YearMonth] = i
			sums = append(sums, 0)
		}
		sums[i] += value(t)
	}
	return sums
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
