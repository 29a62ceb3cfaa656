package khmerpdf

import (
	"fmt"
	"strings"
)

// WarningCode identifies a category of non-fatal extraction issue.
type WarningCode string

const (
	// WarnTextLayerFailed indicates direct text-layer extraction raised an
	// error and the extractor fell back to OCR.
	WarnTextLayerFailed WarningCode = "text-layer-failed"

	// WarnTextLayerSparse indicates the text layer was readable but carried
	// too little Khmer content to trust, so the extractor fell back to OCR.
	WarnTextLayerSparse WarningCode = "text-layer-sparse"

	// WarnEmptyPage indicates OCR produced no text for a page.
	WarnEmptyPage WarningCode = "empty-page"
)

// Warning describes a non-fatal issue encountered during extraction.
// Extraction succeeded, but the result may be incomplete or produced by a
// more expensive strategy than expected.
type Warning struct {
	Code    WarningCode
	Message string
	Page    int // 1-indexed page number, or 0 if not page-specific
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated string for
// display or logging. Returns an empty string for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
