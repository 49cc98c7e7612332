package processor

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a locale-formatted cell into a decimal amount:
// "1.234,56" -> 1234.56. Blank, dash and nan placeholders are zero. An
// unparseable cell logs a warning and degrades to zero so one bad cell
// never aborts a file.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "-", "nan":
		return decimal.Zero
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		slog.Warn("unable to convert value to number", "value", raw)
		return decimal.Zero
	}
	return d
}
