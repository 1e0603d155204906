package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountStrings(amounts []decimal.Decimal) []string {
	strs := make([]string, 0, len(amounts))
	for _, a := range amounts {
		strs = append(strs, a.StringFixed(2))
	}
	return strs
}

func TestExtractAmounts(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"thousands separator", "Gross $1,234.56", []string{"1234.56"}},
		{"plain amount", "Regular 3000.00", []string{"3000.00"}},
		{"multiple columns in line order", "Regular 3000.00 48,000.00 36.06", []string{"3000.00", "48000.00", "36.06"}},
		{"dollar sign with space", "Net Pay $ 2,550.00", []string{"2550.00"}},
		{"negative kept as magnitude", "Adjustment -287.00", []string{"287.00"}},
		{"noise below one cent dropped", "Misc 0.01", nil},
		{"bare zero dropped", "Rate 0", nil},
		{"no numbers", "Earnings Statement", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmounts(tt.line)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, amountStrings(got))
		})
	}
}

func TestExtractAmountsExactDecimal(t *testing.T) {
	got := ExtractAmounts("$1,234.56")
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(decimal.RequireFromString("1234.56")), "got %s", got[0])
}

func TestPickLargest(t *testing.T) {
	_, ok := PickLargest(nil)
	assert.False(t, ok)

	amounts := []decimal.Decimal{
		decimal.RequireFromString("36.06"),
		decimal.RequireFromString("3000.00"),
		decimal.RequireFromString("450.00"),
	}
	picked, ok := PickLargest(amounts)
	require.True(t, ok)
	assert.Equal(t, "3000.00", picked.StringFixed(2))
}
