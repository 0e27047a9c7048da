package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tallyworks/dividend-engine/internal/domain/extract"
)

// readDocument loads a file and returns its text. PDF inputs are validated
// and page-counted, but extracting text from them needs an external
// backend that the CLI does not bundle, so they are rejected with a clear
// message. Everything else is treated as already-extracted statement text.
func readDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		if errs := extract.ValidatePDF(data); len(errs) > 0 {
			return "", fmt.Errorf("%s: %s", path, strings.Join(errs, "; "))
		}
		pages, err := extract.PageCount(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return "", fmt.Errorf("%s: valid PDF (%d pages) but no text extraction backend is configured; extract the text first and pass a .txt file", path, pages)
	}

	result, err := extract.PlainTextExtractor{}.ExtractText(ctx, data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return result.Text, nil
}
