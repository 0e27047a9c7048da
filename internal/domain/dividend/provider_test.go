package dividend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Provider
	}{
		{
			name: "computershare branding",
			text: "Computershare Investor Services Pty Limited\nDividend Statement",
			want: ProviderComputershare,
		},
		{
			name: "link branding",
			text: "Link Market Services Limited\nDistribution Statement",
			want: ProviderLink,
		},
		{
			name: "boardroom branding",
			text: "Boardroom Pty Limited\nDividend Advice",
			want: ProviderBoardroom,
		},
		{
			name: "generic dividend text with no branding",
			text: "XYZ Limited\nDividend Statement\nFranked Amount: $100.00",
			want: ProviderDirect,
		},
		{
			name: "distribution statement is direct",
			text: "ABC Trust\nDistribution Statement",
			want: ProviderDirect,
		},
		{
			name: "no signals at all",
			text: "completely unrelated text",
			want: ProviderUnknown,
		},
		{
			name: "empty",
			text: "",
			want: ProviderUnknown,
		},
		{
			name: "fuzzy brand token survives OCR noise",
			text: "Computershore Investor Services\nDividend Statement",
			want: ProviderComputershare,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectProvider(tt.text))
		})
	}
}
