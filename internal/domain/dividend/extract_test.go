package dividend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLabelSynonyms(t *testing.T) {
	text := `Acme Property Trust
Distribution Statement
Units Held: 1,200
Distribution per Unit: 8.5 cents
Gross Distribution: $102.00
Imputation Credits: $10.00
Date Paid: 28 February 2024`

	f := Extract(text)

	require.True(t, f.CompanyName.Present)
	assert.Equal(t, "Acme Property Trust", f.CompanyName.Value)
	require.True(t, f.SharesHeld.Present)
	assertDecimal(t, "1200", f.SharesHeld.Value)
	require.True(t, f.DividendPerShare.Present)
	assertDecimal(t, "0.085", f.DividendPerShare.Value)
	require.True(t, f.GrossAmount.Present)
	assertDecimal(t, "102.00", f.GrossAmount.Value)
	require.True(t, f.FrankingCredits.Present)
	assertDecimal(t, "10.00", f.FrankingCredits.Value)
	require.True(t, f.PaymentDate.Present)
	assert.Equal(t, "2024-02-28", f.PaymentDate.Value)
}

func TestExtractFrankedNeverMatchesUnfranked(t *testing.T) {
	f := Extract("Unfranked Amount: $300.00")

	assert.False(t, f.FrankedAmount.Present)
	require.True(t, f.UnfrankedAmount.Present)
	assertDecimal(t, "300.00", f.UnfrankedAmount.Value)
}

func TestExtractASXCodeForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled", "ASX Code: BHP", "BHP"},
		{"bare label", "ASX: WES", "WES"},
		{"parenthesised", "Wesfarmers Limited (ASX: WES)", "WES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text)
			require.True(t, f.ASXCode.Present)
			assert.Equal(t, tt.want, f.ASXCode.Value)
		})
	}
}

func TestExtractCompanyNamePrefersCorporateSuffix(t *testing.T) {
	text := `Your Dividend Advice
Shareholder Reference: X0012345678
BHP Group Limited
Payment Date: 15/03/2024`

	f := Extract(text)
	require.True(t, f.CompanyName.Present)
	assert.Equal(t, "BHP Group Limited", f.CompanyName.Value)
}

func TestExtractMissesAreIndependent(t *testing.T) {
	f := Extract("Franked Amount: $700.00")

	assert.True(t, f.FrankedAmount.Present)
	assert.False(t, f.GrossAmount.Present)
	assert.False(t, f.SharesHeld.Present)
	assert.False(t, f.PaymentDate.Present)
	assert.False(t, f.ABN.Present)
}
