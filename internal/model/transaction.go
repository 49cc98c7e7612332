package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one consolidated ledger entry parsed from a statement
// export. Credit is non-negative, Debit is non-positive, and Value is the
// signed sum of the two. Balance holds the running balance after this
// transaction; it is recomputed during consolidation, never trusted from
// the source file. StatedBalance keeps whatever the export printed and is
// only used to seed the recomputation.
type Transaction struct {
	Date          time.Time
	Description   string
	Document      string
	Credit        decimal.Decimal
	Debit         decimal.Decimal
	Value         decimal.Decimal
	Balance       decimal.Decimal
	StatedBalance decimal.Decimal
	SourceFile    string

	// Derived fields attached by the analytics stage.
	Year       int
	Month      int
	YearMonth  string // "2006-01"
	MonthName  string // "Jan/2006"
	Type       string // "Credit" or "Debit"
	CreditAbs  decimal.Decimal
	DebitAbs   decimal.Decimal
	Category   string
	MA3Balance decimal.Decimal
	MA3Flow    decimal.Decimal
	Trend      string
	Anomaly    string
}

// DedupKey is the composite identity used to drop duplicates across
// overlapping export windows.
type DedupKey struct {
	Date        time.Time
	Description string
	Document    string
	Value       string // rendered fixed so 10 and 10.00 collide
}

// Key returns the transaction's deduplication identity.
func (t Transaction) Key() DedupKey {
	return DedupKey{
		Date:        t.Date,
		Description: t.Description,
		Document:    t.Document,
		Value:       t.Value.StringFixed(2),
	}
}
