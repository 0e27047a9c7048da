package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Valid(t *testing.T) {
	require.NoError(t, DefaultRegistry().Validate())
}

func TestParseRegistry(t *testing.T) {
	t.Run("valid YAML replaces pattern sets", func(t *testing.T) {
		data := []byte(`
dividend_statement:
  - phrase: dividend advice
    weight: 1.5
  - pattern: '(?i)franking\s+account'
    weight: 1.0
bank_statement:
  - all_of: [opening balance, closing balance]
    weight: 2.0
`)
		reg, err := ParseRegistry(data)
		require.NoError(t, err)
		require.Len(t, reg[TypeDividendStatement], 2)
		assert.Equal(t, "dividend advice", reg[TypeDividendStatement][0].Phrase)

		c, err := NewClassifier(reg)
		require.NoError(t, err)
		result := c.Classify("Dividend Advice\nFranking Account balance")
		assert.Equal(t, TypeDividendStatement, result.Type)
	})

	t.Run("rejects indicator without a matcher", func(t *testing.T) {
		_, err := ParseRegistry([]byte("invoice:\n  - weight: 1.0\n"))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		_, err := ParseRegistry([]byte("invoice:\n  - phrase: invoice\n    weight: 0\n"))
		assert.Error(t, err)
	})

	t.Run("rejects indicators for unknown", func(t *testing.T) {
		_, err := ParseRegistry([]byte("unknown:\n  - phrase: mystery\n    weight: 1.0\n"))
		assert.Error(t, err)
	})

	t.Run("rejects empty registry", func(t *testing.T) {
		_, err := ParseRegistry([]byte("{}"))
		assert.ErrorIs(t, err, ErrEmptyRegistry)
	})

	t.Run("rejects invalid regex at compile", func(t *testing.T) {
		reg := Registry{TypeInvoice: {{Pattern: "(unclosed", Weight: 1.0}}}
		_, err := NewClassifier(reg)
		assert.Error(t, err)
	})
}
