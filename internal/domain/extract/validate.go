package extract

import (
	"bytes"
	"fmt"
)

const (
	// MaxPDFBytes caps accepted uploads at 50 MiB.
	MaxPDFBytes = 50 << 20

	pdfMagic = "%PDF-"
)

// ValidatePDF checks a byte buffer purported to be a PDF: non-empty,
// carries the %PDF- magic header, and within the size cap. It returns
// human-readable validation failures; an empty slice means the buffer
// may be handed to an extractor.
func ValidatePDF(data []byte) []string {
	var errs []string
	if len(data) == 0 {
		errs = append(errs, "document is empty")
		return errs
	}
	if !bytes.HasPrefix(data, []byte(pdfMagic)) {
		errs = append(errs, "document is not a valid PDF (missing %PDF- header)")
	}
	if len(data) > MaxPDFBytes {
		errs = append(errs, fmt.Sprintf("document exceeds the %d MiB size limit", MaxPDFBytes>>20))
	}
	return errs
}
