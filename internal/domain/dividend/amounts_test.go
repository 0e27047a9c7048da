package dividend

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.String())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1075", "1075", true},
		{"1,234,567.89", "1234567.89", true},
		{"$1,075.00", "1075", true},
		{"A$25.50", "25.5", true},
		{"AUD 100.00", "100", true},
		{"215 cents", "2.15", true},
		{"215.0000 cents", "2.15", true},
		{"21.5c", "0.215", true},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assertDecimal(t, tt.want, got)
			}
		})
	}
}

func TestAmountExtractor(t *testing.T) {
	e := newAmountExtractor(`\bfranked\s+amount`)

	t.Run("labeled dollar amount", func(t *testing.T) {
		got, ok := e.find("Franked Amount: $1,075.00\n")
		require.True(t, ok)
		assertDecimal(t, "1075", got)
	})

	t.Run("cents suffix converts to dollars", func(t *testing.T) {
		dps := newAmountExtractor(`dividend\s+per\s+share`)
		got, ok := dps.find("Dividend per Share: 215 cents")
		require.True(t, ok)
		assertDecimal(t, "2.15", got)
	})

	t.Run("cents-denominated label converts bare numbers", func(t *testing.T) {
		dps := newAmountExtractor(`dividend\s+per\s+share`, `cents\s+per\s+share`)
		got, ok := dps.find("Cents per Share: 215")
		require.True(t, ok)
		assertDecimal(t, "2.15", got)
	})

	t.Run("dollar sign overrides a cents label", func(t *testing.T) {
		dps := newAmountExtractor(`cents\s+per\s+share`)
		got, ok := dps.find("Cents per Share: $2.15")
		require.True(t, ok)
		assertDecimal(t, "2.15", got)
	})

	t.Run("does not match unfranked", func(t *testing.T) {
		_, ok := e.find("Unfranked Amount: $500.00")
		assert.False(t, ok)
	})

	t.Run("missing label", func(t *testing.T) {
		_, ok := e.find("Total: $12.00")
		assert.False(t, ok)
	})
}

func TestCountExtractor(t *testing.T) {
	e := newCountExtractor(`shares\s+held`, `units\s+held`)

	got, ok := e.find("Shares Held: 1,500")
	require.True(t, ok)
	assertDecimal(t, "1500", got)

	got, ok = e.find("Units held - 250")
	require.True(t, ok)
	assertDecimal(t, "250", got)

	_, ok = e.find("no holdings listed")
	assert.False(t, ok)
}
