package processor

import (
	"slices"
	"strings"
)

// MergeRows collapses multi-row transaction fragments into one row per
// transaction. The export splits long descriptions across several physical
// rows whose date cell is blank; every dated row starts a new group and
// continuation text is concatenated onto the group's first row. Fragments
// matching an ignore word (running totals echoed mid-statement) are not
// carried over.
//
// Rows must already be restricted to the canonical column layout.
func MergeRows(rows [][]string, ignoreWords []string) [][]string {
	var merged [][]string
	var current []string

	for _, row := range rows {
		if strings.TrimSpace(row[colDate]) != "" {
			if current != nil {
				merged = append(merged, current)
			}
			current = slices.Clone(row)
			continue
		}

		if current == nil {
			// Fragment before the first dated row. It heads its own group
			// and falls out later when its date fails to parse.
			current = slices.Clone(row)
			continue
		}

		extra := strings.TrimSpace(row[colDescription])
		if extra == "" || containsAny(extra, ignoreWords) {
			continue
		}
		current[colDescription] = strings.TrimSpace(current[colDescription] + " " + extra)
	}

	if current != nil {
		merged = append(merged, current)
	}
	return merged
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
