package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount_BrazilianFormat(t *testing.T) {
	assert.Equal(t, "1234.56", ParseAmount("1.234,56").String())
	assert.Equal(t, "-1000", ParseAmount("-1.000,00").String())
	assert.Equal(t, "10.5", ParseAmount("10,50").String())
	assert.Equal(t, "7", ParseAmount("7").String())
}

func TestParseAmount_Placeholders(t *testing.T) {
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("-").IsZero())
	assert.True(t, ParseAmount("nan").IsZero())
	assert.True(t, ParseAmount("NaN").IsZero())
	assert.True(t, ParseAmount("  ").IsZero())
}

func TestParseAmount_UnparseableDegradesToZero(t *testing.T) {
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("12,34,56").IsZero())
}
