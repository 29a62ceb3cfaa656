// Package reader provides text-layer extraction from PDF files.
//
// It wraps github.com/ledongthuc/pdf to pull the embedded, selectable text
// content out of a PDF, as opposed to pixel-level OCR. Scanned documents
// typically have no text layer at all; callers are expected to fall back to
// OCR when the returned text is empty or not meaningful.
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	text, err := r.Text()
package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader reads the embedded text layer of a PDF file.
type Reader struct {
	file *os.File
	doc  *pdf.Reader
}

// Open opens a PDF file for text-layer reading.
func Open(filename string) (*Reader, error) {
	file, doc, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Reader{file: file, doc: doc}, nil
}

// Close releases the underlying file handle.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.doc.NumPage()
}

// PageText extracts the embedded text of a single page (1-indexed).
// Pages without a text layer yield an empty string, not an error.
func (r *Reader) PageText(pageNum int) (text string, err error) {
	if pageNum < 1 || pageNum > r.doc.NumPage() {
		return "", fmt.Errorf("page %d out of range (1-%d)", pageNum, r.doc.NumPage())
	}

	// The underlying parser panics on some malformed content streams rather
	// than returning an error. Treat a panic as a failed extraction so the
	// caller can fall back to OCR.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: text extraction panicked: %v", pageNum, rec)
		}
	}()

	page := r.doc.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", pageNum, err)
	}
	return text, nil
}

// Text extracts the text layer of every page in order, appending a blank-line
// separator after each page.
func (r *Reader) Text() (string, error) {
	var b strings.Builder
	for i := 1; i <= r.doc.NumPage(); i++ {
		text, err := r.PageText(i)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
