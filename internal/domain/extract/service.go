package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tallyworks/dividend-engine/internal/domain/classify"
	"github.com/tallyworks/dividend-engine/internal/domain/dividend"
)

// DocumentResult is the outcome of running one document through the
// pipeline: validation, text extraction, classification, and, for
// dividend statements, the dividend parse.
type DocumentResult struct {
	Filename       string
	Pages          int
	Classification classify.ClassificationResult
	Parse          *dividend.ParseResult
	Errors         []string
	Success        bool
}

// Service composes the ingestion pipeline. The extractor is the only
// I/O boundary; everything downstream is pure and per-document.
type Service struct {
	extractor  TextExtractor
	classifier *classify.Classifier
	parser     *dividend.Parser
	logger     *slog.Logger
}

func NewService(extractor TextExtractor, classifier *classify.Classifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		extractor:  extractor,
		classifier: classifier,
		parser:     dividend.NewParser(),
		logger:     logger,
	}
}

// ProcessPDF validates and extracts a PDF buffer, then classifies and,
// for dividend statements, parses the text. Extraction failures become
// document-level errors; they never panic or leak into other documents.
func (s *Service) ProcessPDF(ctx context.Context, filename string, data []byte) DocumentResult {
	result := DocumentResult{Filename: filename}

	if errs := ValidatePDF(data); len(errs) > 0 {
		s.logger.Warn("document failed validation", "filename", filename, "errors", errs)
		result.Errors = errs
		return result
	}

	extracted, err := s.extractor.ExtractText(ctx, data)
	if err != nil {
		s.logger.Error("text extraction failed", "filename", filename, "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("text extraction failed: %v", err))
		return result
	}
	result.Pages = extracted.Pages

	return s.processText(filename, extracted.Text, result)
}

// ProcessText runs classification and parsing on already-extracted text.
func (s *Service) ProcessText(_ context.Context, filename, text string) DocumentResult {
	return s.processText(filename, text, DocumentResult{Filename: filename, Pages: 1})
}

func (s *Service) processText(filename, text string, result DocumentResult) DocumentResult {
	result.Classification = s.classifier.Classify(text)
	s.logger.Info("document classified",
		"filename", filename,
		"type", result.Classification.Type,
		"confidence", result.Classification.Confidence)

	if result.Classification.Type != classify.TypeDividendStatement {
		result.Success = true
		return result
	}

	parse := s.parser.Parse(text)
	result.Parse = &parse
	result.Success = parse.Success
	result.Errors = append(result.Errors, parse.Errors...)
	return result
}
