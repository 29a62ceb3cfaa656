// Package ocr provides OCR (Optical Character Recognition) capabilities
// for extracting text from rasterized PDF pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Recognizing Khmer additionally requires the "khm" trained data file from
// the tessdata repository, placed in Tesseract's tessdata directory.
package ocr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrLanguageNotInstalled is returned by CheckLanguage when the requested
// trained data file is not present in Tesseract's tessdata directory.
var ErrLanguageNotInstalled = errors.New("language data not installed for Tesseract")

// PSMAuto is the fully automatic page segmentation mode. It lets Tesseract
// decide how a page image decomposes into text regions, which is the right
// choice for whole-page scans of unknown layout.
const PSMAuto = gosseract.PSM_AUTO

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
// It is safe to call Close multiple times.
func (c *Client) Close() error {
	if c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as separate arguments (e.g., "khm", "eng").
func (c *Client) SetLanguage(langs ...string) error {
	return c.client.SetLanguage(langs...)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// EngineVersion returns the version string of the Tesseract engine linked
// into the binary.
func EngineVersion() string {
	return gosseract.Version()
}

// Languages returns the language codes Tesseract has trained data for.
func Languages() ([]string, error) {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return nil, fmt.Errorf("failed to query Tesseract languages: %w", err)
	}
	return langs, nil
}

// CheckLanguage verifies that trained data for lang is installed. The
// returned error wraps ErrLanguageNotInstalled and names the available
// languages, so it can be surfaced to users as-is.
func CheckLanguage(lang string) error {
	langs, err := Languages()
	if err != nil {
		return err
	}
	for _, l := range langs {
		if l == lang {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: %s)", ErrLanguageNotInstalled, lang, strings.Join(langs, ", "))
}
