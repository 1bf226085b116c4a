package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStripsSymbolsAndSeparators(t *testing.T) {
	rate := decimal.RequireFromString("0.78")

	got, err := Normalize("£1,234.50", rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("962.91")), "got %s", got)
}

func TestNormalizeWholeAmounts(t *testing.T) {
	rate := decimal.RequireFromString("0.78")

	got, err := Normalize("$4,000", rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("3120")), "got %s", got)
}

func TestNormalizeIdentityRate(t *testing.T) {
	got, err := Normalize("£735,002", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(735002)), "got %s", got)
}

func TestNormalizeRejectsEmptyAndNonNumeric(t *testing.T) {
	rate := decimal.RequireFromString("0.78")

	for _, raw := range []string{"", "n/a", "-", "£", "1.2.3"} {
		_, err := Normalize(raw, rate)
		assert.ErrorIs(t, err, ErrParse, "input %q", raw)
	}
}
