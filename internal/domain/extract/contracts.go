// Package extract owns the document ingestion boundary: input validation,
// the pluggable text-extraction contract, and the service that turns raw
// bytes into parsed dividends.
package extract

import "context"

// TextExtractionResult is the output of the PDF-to-text boundary.
type TextExtractionResult struct {
	Text  string
	Pages int
}

// TextExtractor converts document bytes into plain text. Implementations
// may be slow and may fail; the service treats every call as fallible I/O
// and isolates failures per document.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (TextExtractionResult, error)
}

// TextExtractorFunc adapts a plain function to the TextExtractor interface.
type TextExtractorFunc func(ctx context.Context, data []byte) (TextExtractionResult, error)

func (f TextExtractorFunc) ExtractText(ctx context.Context, data []byte) (TextExtractionResult, error) {
	return f(ctx, data)
}
