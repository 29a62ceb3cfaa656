// Package testpdf builds small, well-formed PDF files for use in tests.
//
// The generated documents use uncompressed content streams and a standard
// Helvetica font so that both the text-layer reader and the rasterizer can
// process them without any embedded font data.
package testpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SinglePage returns a one-page PDF that draws the given ASCII text.
func SinglePage(text string) []byte {
	return MultiPage([]string{text})
}

// MultiPage returns a PDF with one page per entry in pageTexts, each drawing
// its ASCII text near the top of a US Letter page.
func MultiPage(pageTexts []string) []byte {
	// Object layout: 1 catalog, 2 page tree, 3 font, then for page i
	// (0-based): object 4+2i is the page, object 5+2i its content stream.
	objects := make([]string, 0, 3+2*len(pageTexts))

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageTexts)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)

	for i, text := range pageTexts {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escape(text))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	return build(objects)
}

// KhmerSinglePage returns a one-page PDF that draws the given Khmer text.
func KhmerSinglePage(text string) []byte {
	return KhmerMultiPage([]string{text})
}

// KhmerMultiPage returns a PDF with one page per entry in pageTexts, drawing
// arbitrary Unicode text through a single-byte font whose ToUnicode CMap maps
// each code back to its original code point. The text layer therefore decodes
// to exactly the input strings. Supports up to 190 distinct characters across
// all pages.
func KhmerMultiPage(pageTexts []string) []byte {
	// Assign single-byte codes to distinct runes in order of appearance.
	codes := make(map[rune]byte)
	var mappings []string
	next := byte(0x41)
	for _, text := range pageTexts {
		for _, r := range text {
			if _, seen := codes[r]; seen {
				continue
			}
			codes[r] = next
			mappings = append(mappings, fmt.Sprintf("<%02x> <%04x>", next, r))
			next++
		}
	}

	cmap := fmt.Sprintf("begincmap\n1 begincodespacerange\n<00> <ff>\nendcodespacerange\n%d beginbfchar\n%s\nendbfchar\nendcmap",
		len(mappings), strings.Join(mappings, "\n"))

	// Object layout: 1 catalog, 2 page tree, 3 font, 4 ToUnicode CMap, then
	// for page i (0-based): object 5+2i is the page, object 6+2i its content
	// stream.
	objects := make([]string, 0, 4+2*len(pageTexts))

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 5+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageTexts)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /ToUnicode 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(cmap), cmap),
	)

	for i, text := range pageTexts {
		encoded := make([]byte, 0, len(text))
		for _, r := range text {
			encoded = append(encoded, codes[r])
		}
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escape(string(encoded)))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 6+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	return build(objects)
}

// WriteFile writes a generated PDF to a temporary file and returns its path.
// The file is removed automatically when the test finishes.
func WriteFile(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
	return path
}

// build assembles numbered objects into a complete PDF with a correct xref
// table. Offsets are computed from the actual byte positions, so object
// bodies can be edited freely without breaking the file.
func build(objects []string) []byte {
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objects)+1)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return []byte(b.String())
}

// escape backslash-escapes the characters that delimit PDF literal strings.
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
