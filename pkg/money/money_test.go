package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		cents int64
	}{
		{"whole dollars", "1075", 107500},
		{"cents preserved", "461.36", 46136},
		{"rounds half up", "2.155", 216},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromDecimal(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.cents, m.Amount())
			assert.Equal(t, AUD, m.Currency().Code)
		})
	}
}

func TestFormatAUD(t *testing.T) {
	assert.Contains(t, FormatAUD(decimal.RequireFromString("1075")), "1,075.00")
	assert.Contains(t, FormatAUD(decimal.Zero), "0.00")
}
