// Package khmerpdf provides a fluent API for extracting Khmer-language text
// from PDF files.
//
// Extraction prefers the PDF's embedded text layer, which is cheap and exact.
// When the text layer is missing or carries no meaningful Khmer content (the
// usual case for scanned documents), extraction falls back to rasterizing
// each page and recognizing it with Tesseract OCR.
//
// Basic usage:
//
//	text, warnings, err := khmerpdf.Open("document.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", khmerpdf.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := khmerpdf.Open("scan.pdf").
//	    DPI(400).
//	    Output("scan.txt").
//	    Text()
package khmerpdf

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The file is not touched until a terminal operation like Text() is called.
//
// Example:
//
//	text, warnings, err := khmerpdf.Open("document.pdf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := khmerpdf.Must(khmerpdf.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() and panics if the error
// is non-nil. It discards warnings and returns just the value. It is
// intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	text := khmerpdf.MustText(khmerpdf.Open("document.pdf").Text())
func MustText(val string, _ []Warning, err error) string {
	if err != nil {
		panic(err)
	}
	return val
}
