package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyworks/dividend-engine/internal/domain/classify"
)

const dividendText = `BHP Group Limited
ABN: 49 004 028 077
ASX Code: BHP
Computershare Investor Services Pty Limited
Dividend Statement
Shares Held: 500
Dividend per Share: $2.15
Franked Amount: $1075.00
Franking Credits: $461.36
Payment Date: 15/03/2024
Record Date: 01/03/2024`

func newTestService(t *testing.T, extractor TextExtractor) *Service {
	t.Helper()
	classifier, err := classify.NewClassifier(classify.DefaultRegistry())
	require.NoError(t, err)
	return NewService(extractor, classifier, nil)
}

func fixedExtractor(text string, pages int) TextExtractor {
	return TextExtractorFunc(func(context.Context, []byte) (TextExtractionResult, error) {
		return TextExtractionResult{Text: text, Pages: pages}, nil
	})
}

func TestServiceProcessPDF(t *testing.T) {
	svc := newTestService(t, fixedExtractor(dividendText, 2))

	result := svc.ProcessPDF(context.Background(), "bhp.pdf", []byte("%PDF-1.7 payload"))
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, classify.TypeDividendStatement, result.Classification.Type)
	require.NotNil(t, result.Parse)
	assert.True(t, result.Parse.Success)
	assert.Equal(t, "BHP Group Limited", result.Parse.Dividend.CompanyName)
}

func TestServiceProcessPDFValidationFailure(t *testing.T) {
	called := false
	svc := newTestService(t, TextExtractorFunc(func(context.Context, []byte) (TextExtractionResult, error) {
		called = true
		return TextExtractionResult{}, nil
	}))

	result := svc.ProcessPDF(context.Background(), "notes.txt", []byte("plain text"))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
	assert.False(t, called, "extractor must not run on invalid input")
}

func TestServiceProcessPDFExtractorFailure(t *testing.T) {
	svc := newTestService(t, TextExtractorFunc(func(context.Context, []byte) (TextExtractionResult, error) {
		return TextExtractionResult{}, errors.New("backend unavailable")
	}))

	result := svc.ProcessPDF(context.Background(), "bhp.pdf", []byte("%PDF-1.7 payload"))
	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "text extraction failed")
	assert.Nil(t, result.Parse)
}

func TestServiceProcessTextNonDividend(t *testing.T) {
	svc := newTestService(t, PlainTextExtractor{})

	result := svc.ProcessText(context.Background(), "receipt.txt",
		"Tax Invoice\nReceipt Number: 12345\nTotal Paid: $20.00\nThank you for your purchase")
	assert.True(t, result.Success)
	assert.Nil(t, result.Parse)
	assert.NotEqual(t, classify.TypeDividendStatement, result.Classification.Type)
}

func TestPlainTextExtractor(t *testing.T) {
	res, err := PlainTextExtractor{}.ExtractText(context.Background(), []byte(dividendText))
	require.NoError(t, err)
	assert.Equal(t, dividendText, res.Text)
	assert.Equal(t, 1, res.Pages)

	_, err = PlainTextExtractor{}.ExtractText(context.Background(), []byte("   \n\t"))
	assert.Error(t, err)
}
