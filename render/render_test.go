package render

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/lyan-chhay/NSSF-LegalAssistantBot/internal/testpdf"
)

// openTestDoc opens a generated PDF, skipping the test when the MuPDF
// bindings are not usable in the current environment.
func openTestDoc(t *testing.T, pageTexts []string) *Document {
	t.Helper()

	path := testpdf.WriteFile(t, testpdf.MultiPage(pageTexts))
	doc, err := Open(path)
	if err != nil {
		t.Skipf("MuPDF not available: %v", err)
	}
	t.Cleanup(func() { doc.Close() })
	return doc
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPageCount(t *testing.T) {
	doc := openTestDoc(t, []string{"one", "two"})

	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
}

func TestImageGrayDimensionsScaleWithDPI(t *testing.T) {
	doc := openTestDoc(t, []string{"scale test"})

	// US Letter is 612x792 points; at 72 DPI one point maps to one pixel.
	low, err := doc.ImageGray(0, 72)
	if err != nil {
		t.Fatalf("ImageGray at 72 DPI failed: %v", err)
	}
	high, err := doc.ImageGray(0, 144)
	if err != nil {
		t.Fatalf("ImageGray at 144 DPI failed: %v", err)
	}

	if w := low.Bounds().Dx(); w < 600 || w > 624 {
		t.Errorf("72 DPI width = %d, want ~612", w)
	}
	if low.Bounds().Dx()*2 != high.Bounds().Dx() && low.Bounds().Dx()*2 != high.Bounds().Dx()-1 && low.Bounds().Dx()*2 != high.Bounds().Dx()+1 {
		t.Errorf("doubling DPI should double width: 72 DPI = %d, 144 DPI = %d",
			low.Bounds().Dx(), high.Bounds().Dx())
	}
}

func TestImageGrayOutOfRange(t *testing.T) {
	doc := openTestDoc(t, []string{"only page"})

	if _, err := doc.ImageGray(5, 72); err == nil {
		t.Error("expected error for page past end")
	}
}

func TestPagePNGIsGrayscale(t *testing.T) {
	doc := openTestDoc(t, []string{"png test"})

	data, err := doc.PagePNG(0, 72)
	if err != nil {
		t.Fatalf("PagePNG failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Errorf("decoded PNG is %T, want *image.Gray", img)
	}
}

func TestCloseTwice(t *testing.T) {
	path := testpdf.WriteFile(t, testpdf.SinglePage("close me"))
	doc, err := Open(path)
	if err != nil {
		t.Skipf("MuPDF not available: %v", err)
	}

	if err := doc.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
