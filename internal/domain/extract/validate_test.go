package extract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{
			name: "valid header",
			data: []byte("%PDF-1.7 rest of document"),
			want: nil,
		},
		{
			name: "empty buffer",
			data: nil,
			want: []string{"document is empty"},
		},
		{
			name: "missing magic",
			data: []byte("hello world"),
			want: []string{"document is not a valid PDF (missing %PDF- header)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePDF(tt.data))
		})
	}
}

func TestValidatePDFOversized(t *testing.T) {
	data := append([]byte("%PDF-"), bytes.Repeat([]byte{0}, MaxPDFBytes)...)
	errs := ValidatePDF(data)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "size limit")
}

func TestValidatePDFReportsAllFailures(t *testing.T) {
	data := bytes.Repeat([]byte("x"), MaxPDFBytes+1)
	errs := ValidatePDF(data)
	require.Len(t, errs, 2)
}
