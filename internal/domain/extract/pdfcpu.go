package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageCount reads the page count out of an in-memory PDF.
func PageCount(data []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("failed to count PDF pages: %w", err)
	}
	return count, nil
}

// PlainTextExtractor satisfies TextExtractor for inputs that are already
// text (statement exports saved as .txt). It exists so the CLI and tests
// can run the full pipeline without a PDF extraction backend.
type PlainTextExtractor struct{}

func (PlainTextExtractor) ExtractText(_ context.Context, data []byte) (TextExtractionResult, error) {
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return TextExtractionResult{}, fmt.Errorf("document contains no text")
	}
	return TextExtractionResult{Text: text, Pages: 1}, nil
}
