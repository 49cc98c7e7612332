// Package analytics derives categories, trend and anomaly annotations and
// summary financial metrics from a consolidated ledger. Every function
// works on its own copy; the consolidated ledger is never mutated.
package analytics

import (
	"strings"

	"github.com/extrato-dev/extrato/internal/config"
)

// Categorizer assigns transactions to categories by case-insensitive
// substring match. Rules are evaluated in order; the first category with
// any matching keyword wins.
type Categorizer struct {
	rules    []config.CategoryRule
	fallback string
}

// NewCategorizer builds a Categorizer from ordered rules and a fallback
// category for unmatched descriptions.
func NewCategorizer(rules []config.CategoryRule, fallback string) *Categorizer {
	return &Categorizer{rules: rules, fallback: fallback}
}

// Categorize maps a transaction description to its category.
func (c *Categorizer) Categorize(description string) string {
	upper := strings.ToUpper(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, strings.ToUpper(keyword)) {
				return rule.Name
			}
		}
	}
	return c.fallback
}
