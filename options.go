package khmerpdf

// ExtractOptions holds configuration for text extraction.
type ExtractOptions struct {
	// OCR path
	dpi      int
	language string

	// Strategy selection
	minKhmerRuns int
	forceOCR     bool

	// Output
	output string

	// Progress reporting (OCR path only)
	progress func(page, total int)
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		dpi:          300,
		language:     "khm",
		minKhmerRuns: 3,
	}
}

// clone creates a copy of ExtractOptions. All fields are values or
// immutable references, so a shallow copy is sufficient.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
