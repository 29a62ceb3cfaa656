// Package render rasterizes PDF pages into grayscale images suitable for OCR.
//
// It wraps github.com/gen2brain/go-fitz (MuPDF) for page rendering. OCR
// engines generally perform better on single-channel input, so every rendered
// page is converted to grayscale before being handed off.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"
)

// Document wraps a PDF opened for rasterization.
type Document struct {
	doc *fitz.Document
}

// Open opens a PDF file for page rendering.
func Open(filename string) (*Document, error) {
	doc, err := fitz.New(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Close releases the underlying MuPDF document.
// It is safe to call Close multiple times.
func (d *Document) Close() error {
	if d.doc != nil {
		err := d.doc.Close()
		d.doc = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// ImageGray rasterizes a page (0-indexed) at the given resolution and returns
// it as a single-channel grayscale image.
func (d *Document) ImageGray(pageNum, dpi int) (*image.Gray, error) {
	img, err := d.doc.ImageDPI(pageNum, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize page %d: %w", pageNum+1, err)
	}

	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return gray, nil
}

// PagePNG rasterizes a page (0-indexed) at the given resolution and returns
// it as a PNG-encoded grayscale image, ready to feed to an OCR engine.
func (d *Document) PagePNG(pageNum, dpi int) ([]byte, error) {
	gray, err := d.ImageGray(pageNum, dpi)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("failed to encode page %d: %w", pageNum+1, err)
	}
	return buf.Bytes(), nil
}
