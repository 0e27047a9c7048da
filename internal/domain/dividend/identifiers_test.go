package dividend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateABN(t *testing.T) {
	tests := []struct {
		name string
		abn  string
		want bool
	}{
		{"valid ABN", "51824753556", true},
		{"invalid checksum", "12345678901", false},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
		{"non-digits", "abcdefghijk", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateABN(tt.abn))
		})
	}
}

func TestExtractABN(t *testing.T) {
	t.Run("spaced form strips whitespace", func(t *testing.T) {
		abn, ok := ExtractABN("ABN: 51 824 753 556\nDividend Statement")
		require.True(t, ok)
		assert.Equal(t, "51824753556", abn)
	})

	t.Run("long label", func(t *testing.T) {
		abn, ok := ExtractABN("Australian Business Number 51824753556")
		require.True(t, ok)
		assert.Equal(t, "51824753556", abn)
	})

	t.Run("dotted label", func(t *testing.T) {
		abn, ok := ExtractABN("A.B.N. 51 824 753 556")
		require.True(t, ok)
		assert.Equal(t, "51824753556", abn)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := ExtractABN("no identifiers here")
		assert.False(t, ok)
	})
}

func TestExtractACN(t *testing.T) {
	acn, ok := ExtractACN("ACN 004 028 077")
	require.True(t, ok)
	assert.Equal(t, "004028077", acn)

	_, ok = ExtractACN("nothing to see")
	assert.False(t, ok)
}
