package khmerpdf

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lyan-chhay/NSSF-LegalAssistantBot/khmer"
	"github.com/lyan-chhay/NSSF-LegalAssistantBot/ocr"
	"github.com/lyan-chhay/NSSF-LegalAssistantBot/reader"
	"github.com/lyan-chhay/NSSF-LegalAssistantBot/render"
)

// Extractor provides a fluent interface for extracting Khmer text from a PDF.
// Each configuration method returns a new Extractor instance, making it safe
// to share a configured extractor and derive variants from it.
type Extractor struct {
	// Source
	filename string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// DPI sets the resolution used when rasterizing pages for OCR (default 300).
// Higher values improve recognition quality at the cost of speed and memory.
// It has no effect when the embedded text layer is used.
//
// Example:
//
//	text, _, err := khmerpdf.Open("scan.pdf").DPI(400).Text()
func (e *Extractor) DPI(dpi int) *Extractor {
	newExt := e.clone()
	if dpi <= 0 {
		newExt.err = fmt.Errorf("dpi must be positive, got %d", dpi)
		return newExt
	}
	newExt.options.dpi = dpi
	return newExt
}

// Language sets the Tesseract language used on the OCR path (default "khm").
// The corresponding trained data must be installed.
//
// Example:
//
//	text, _, err := khmerpdf.Open("scan.pdf").Language("khm").Text()
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	if lang == "" {
		newExt.err = fmt.Errorf("language must not be empty")
		return newExt
	}
	newExt.options.language = lang
	return newExt
}

// MinKhmerRuns sets the threshold for trusting the embedded text layer
// (default 3). The text layer is accepted only when it contains more than n
// maximal runs of Khmer code points; otherwise extraction falls back to OCR.
//
// Example:
//
//	text, _, err := khmerpdf.Open("document.pdf").MinKhmerRuns(10).Text()
func (e *Extractor) MinKhmerRuns(n int) *Extractor {
	newExt := e.clone()
	if n < 0 {
		newExt.err = fmt.Errorf("minimum Khmer runs must not be negative, got %d", n)
		return newExt
	}
	newExt.options.minKhmerRuns = n
	return newExt
}

// ForceOCR skips the embedded text layer entirely and always uses OCR.
// Useful when a PDF carries a garbled or watermark-only text layer.
//
// Example:
//
//	text, _, err := khmerpdf.Open("document.pdf").ForceOCR().Text()
func (e *Extractor) ForceOCR() *Extractor {
	newExt := e.clone()
	newExt.options.forceOCR = true
	return newExt
}

// Output configures Text() to also write the extracted text to the given
// file, UTF-8 encoded. The returned string is identical whether or not an
// output file is configured.
//
// Example:
//
//	text, _, err := khmerpdf.Open("document.pdf").Output("document.txt").Text()
func (e *Extractor) Output(path string) *Extractor {
	newExt := e.clone()
	newExt.options.output = path
	return newExt
}

// Progress registers a callback invoked before each page is processed on the
// OCR path, with the 1-indexed page number and the total page count. The
// text-layer path never invokes it.
func (e *Extractor) Progress(fn func(page, total int)) *Extractor {
	newExt := e.clone()
	newExt.options.progress = fn
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the PDF.
//
// Example:
//
//	count, err := khmerpdf.Open("document.pdf").PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := statInput(e.filename); err != nil {
		return 0, err
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return r.PageCount(), nil
}

// Text extracts and returns the Khmer text content of the PDF.
//
// Returns the extracted text, any warnings encountered during processing,
// and an error if extraction failed. Warnings indicate non-fatal issues,
// such as a fallback from the text layer to OCR or a page that produced no
// text.
//
// Example:
//
//	text, warnings, err := khmerpdf.Open("document.pdf").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", khmerpdf.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	// The input must exist before any extraction work is attempted.
	if err := statInput(e.filename); err != nil {
		return "", nil, err
	}

	// The OCR fallback is only usable when the trained data is installed.
	// Checking up front avoids rasterizing a long document only to fail on
	// its first page.
	if err := ocr.CheckLanguage(e.options.language); err != nil {
		return "", nil, err
	}

	var warnings []Warning

	if !e.options.forceOCR {
		text, ok, warn := e.textLayer()
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		if ok {
			if err := e.writeOutput(text); err != nil {
				return "", warnings, err
			}
			return text, warnings, nil
		}
	}

	text, ocrWarnings, err := e.ocrText()
	warnings = append(warnings, ocrWarnings...)
	if err != nil {
		return "", warnings, err
	}
	if err := e.writeOutput(text); err != nil {
		return "", warnings, err
	}
	return text, warnings, nil
}

// textLayer attempts direct text-layer extraction. ok reports whether the
// result passed the Khmer-run heuristic and should be used as-is. A non-nil
// warning explains why the extractor is falling back to OCR; any partial
// text is discarded in that case.
func (e *Extractor) textLayer() (text string, ok bool, warn *Warning) {
	r, err := reader.Open(e.filename)
	if err != nil {
		return "", false, &Warning{
			Code:    WarnTextLayerFailed,
			Message: fmt.Sprintf("direct text extraction failed (%v); switching to OCR", err),
		}
	}
	defer r.Close()

	text, err = r.Text()
	if err != nil {
		return "", false, &Warning{
			Code:    WarnTextLayerFailed,
			Message: fmt.Sprintf("direct text extraction failed (%v); switching to OCR", err),
		}
	}

	if runs := khmer.CountRuns(text); runs <= e.options.minKhmerRuns {
		return "", false, &Warning{
			Code:    WarnTextLayerSparse,
			Message: fmt.Sprintf("text layer has %d Khmer runs (need more than %d); switching to OCR", runs, e.options.minKhmerRuns),
		}
	}

	return text, true, nil
}

// ocrText rasterizes every page at the configured DPI and recognizes it with
// Tesseract. Each page's output is preceded by a "--- Page N ---" marker and
// pages are concatenated in order.
func (e *Extractor) ocrText() (string, []Warning, error) {
	doc, err := render.Open(e.filename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to convert PDF to images: %w", err)
	}
	defer doc.Close()

	pageCount := doc.PageCount()
	if pageCount == 0 {
		return "", nil, fmt.Errorf("PDF has no pages")
	}

	client, err := ocr.New()
	if err != nil {
		return "", nil, fmt.Errorf("failed to initialize OCR engine: %w", err)
	}
	defer client.Close()

	if err := client.SetLanguage(e.options.language); err != nil {
		return "", nil, fmt.Errorf("failed to set OCR language %q: %w", e.options.language, err)
	}
	if err := client.SetPageSegMode(ocr.PSMAuto); err != nil {
		return "", nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	var warnings []Warning
	var b strings.Builder

	for i := 0; i < pageCount; i++ {
		if e.options.progress != nil {
			e.options.progress(i+1, pageCount)
		}

		img, err := doc.PagePNG(i, e.options.dpi)
		if err != nil {
			return "", warnings, fmt.Errorf("failed to convert PDF to images: %w", err)
		}

		pageText, err := client.RecognizeImage(img)
		if err != nil {
			return "", warnings, fmt.Errorf("OCR failed on page %d: %w", i+1, err)
		}

		// Tesseract emits decomposed Khmer sequences; canonical composition
		// makes repeated extractions and downstream comparisons stable.
		pageText = norm.NFC.String(pageText)

		if pageText == "" {
			warnings = append(warnings, Warning{
				Code:    WarnEmptyPage,
				Message: "OCR produced no text",
				Page:    i + 1,
			})
		}

		fmt.Fprintf(&b, "--- Page %d ---\n%s\n\n", i+1, pageText)
	}

	return b.String(), warnings, nil
}

// writeOutput persists text when an output path is configured.
func (e *Extractor) writeOutput(text string) error {
	if e.options.output == "" {
		return nil
	}
	if err := os.WriteFile(e.options.output, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// statInput verifies that the input path names an existing regular file.
func statInput(filename string) error {
	if filename == "" {
		return fmt.Errorf("no filename specified")
	}
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("PDF file not found: %s", filename)
	}
	if info.IsDir() {
		return fmt.Errorf("not a file: %s", filename)
	}
	return nil
}
