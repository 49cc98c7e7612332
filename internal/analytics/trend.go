package analytics

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/extrato-dev/extrato/internal/model"
)

// Trend labels produced by EstimateTrend.
const (
	TrendRising  = "Rising"
	TrendFalling = "Falling"
	TrendStable  = "Stable"
)

// EstimateTrend classifies a period-indexed series by fitting a degree-1
// least-squares line and comparing its slope against a noise threshold of
// 10% of the series' population standard deviation (a small floor when the
// series has no variance). Fewer than three points is always Stable.
func EstimateTrend(series []float64) string {
	if len(series) < 3 {
		return TrendStable
	}

	xs := make([]float64, len(series))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, series, nil, false)

	threshold := 0.01
	if std := stat.PopStdDev(series, nil); std > 0 {
		threshold = std * 0.1
	}

	switch {
	case slope > threshold:
		return TrendRising
	case slope < -threshold:
		return TrendFalling
	default:
		return TrendStable
	}
}

// monthly is one month's aggregate: closing balance and net flow.
type monthly struct {
	key     string
	balance decimal.Decimal
	flow    decimal.Decimal
}

// AttachMovingAverages groups the ledger by year-month, computes a
// trailing rolling mean (minimum one period) of the monthly closing
// balance and net flow, classifies the monthly balance series with
// EstimateTrend, and broadcasts the results back onto every transaction in
// each month. Requires a Decorate()d ledger in chronological order.
func AttachMovingAverages(txns []model.Transaction, window int) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	if len(out) == 0 {
		return out
	}
	if window < 1 {
		window = 1
	}

	months := aggregateMonthly(out)

	balances := make([]float64, len(months))
	for i, m := range months {
		balances[i] = m.balance.InexactFloat64()
	}
	trend := EstimateTrend(balances)

	type rolled struct {
		balance decimal.Decimal
		flow    decimal.Decimal
	}
	byMonth := make(map[string]rolled, len(months))
	for i, m := range months {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		byMonth[m.key] = rolled{
			balance: meanDecimal(months[start : i+1], func(m monthly) decimal.Decimal { return m.balance }),
			flow:    meanDecimal(months[start:i+1], func(m monthly) decimal.Decimal { return m.flow }),
		}
	}

	for i := range out {
		r := byMonth[out[i].YearMonth]
		out[i].MA3Balance = r.balance
		out[i].MA3Flow = r.flow
		out[i].Trend = trend
	}
	return out
}

// aggregateMonthly folds a chronologically sorted ledger into per-month
// closing balance and summed net flow, in first-seen (chronological) order.
func aggregateMonthly(txns []model.Transaction) []monthly {
	var months []monthly
	index := make(map[string]int)
	for _, t := range txns {
		i, ok := index[t.YearMonth]
		if !ok {
			i = len(months)
			index[t.YearMonth] = i
			months = append(months, monthly{key: t.YearMonth})
		}
		months[i].balance = t.Balance
		months[i].flow = months[i].flow.Add(t.Value)
	}
	return months
}

func meanDecimal(months []monthly, field func(monthly) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range months {
		sum = sum.Add(field(m))
	}
	return sum.Div(decimal.NewFromInt(int64(len(months)))).Round(2)
}
