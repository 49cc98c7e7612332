package processor

import (
	"log/slog"
	"strings"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/statement"
)

// Validate gates a parsed table before any column renaming happens. It
// rejects tables that are too narrow, files whose name carries none of the
// institution's markers, and empty tables. Rejection is reported on the
// diagnostics channel, never as an error.
func Validate(t *statement.Table, fileName string, cfg *config.StatementConfig) bool {
	if t.ColumnCount() < cfg.MinColumns {
		slog.Warn("file has insufficient columns", "file", fileName, "columns", t.ColumnCount())
		return false
	}

	upper := strings.ToUpper(fileName)
	marked := false
	for _, marker := range cfg.Markers {
		if strings.Contains(upper, strings.ToUpper(marker)) {
			marked = true
			break
		}
	}
	if !marked {
		slog.Warn("file does not appear to belong to the institution", "file", fileName)
		return false
	}

	if len(t.Rows) == 0 {
		slog.Warn("file is empty", "file", fileName)
		return false
	}

	return true
}
