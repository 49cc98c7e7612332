package analytics

import (
	"fmt"

	"github.com/extrato-dev/extrato/internal/model"
)

// Type labels for the derived credit/debit column.
const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// Decorate returns a copy of the ledger with the calendar, absolute-value,
// type and category fields attached.
func Decorate(txns []model.Transaction, cat *Categorizer) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	for i := range out {
		t := &out[i]
		t.Year = t.Date.Year()
		t.Month = int(t.Date.Month())
		t.YearMonth = fmt.Sprintf("%04d-%02d", t.Year, t.Month)
		t.MonthName = t.Date.Format("Jan/2006")
		if t.Value.Sign() >= 0 {
			t.Type = TypeCredit
		} else {
			t.Type = TypeDebit
		}
		t.CreditAbs = t.Credit.Abs()
		t.DebitAbs = t.Debit.Abs()
		t.Category = cat.Categorize(t.Description)
	}
	return out
}
