// Command khmerpdf extracts Khmer-language text from a PDF file.
//
// It prefers the PDF's embedded text layer and falls back to Tesseract OCR
// for scanned documents. The extracted text is printed as a preview or, with
// -o, written to a UTF-8 text file.
//
// Usage:
//
//	khmerpdf [flags] <pdf>
//
// Environment defaults can be placed in a .env file next to the binary
// (KHMERPDF_DPI, KHMERPDF_MIN_RUNS, TESSDATA_PREFIX).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	khmerpdf "github.com/lyan-chhay/NSSF-LegalAssistantBot"
	"github.com/lyan-chhay/NSSF-LegalAssistantBot/ocr"
)

// previewLimit caps console output when no output file is requested.
const previewLimit = 1000

type options struct {
	pdfPath string
	output  string
	dpi     int
	minRuns int
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "khmerpdf: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "khmerpdf: %v\n", err)
		printTroubleshooting()
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	// A .env file can supply defaults, including TESSDATA_PREFIX for
	// Tesseract itself. Missing files are fine.
	_ = godotenv.Load()

	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: khmerpdf [flags] <pdf>\n")
		flag.PrintDefaults()
	}

	var output string
	flag.StringVar(&output, "o", "", "Output text file path (optional)")
	flag.StringVar(&output, "output", "", "Output text file path (optional)")
	dpi := flag.Int("dpi", envInt("KHMERPDF_DPI", 300), "DPI for image conversion (higher is better quality but slower)")
	minRuns := flag.Int("min-runs", envInt("KHMERPDF_MIN_RUNS", 3), "Khmer run count above which the embedded text layer is trusted")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing pdf path")
	}

	opts.pdfPath = flag.Arg(0)
	opts.output = output
	opts.dpi = *dpi
	opts.minRuns = *minRuns
	return opts, nil
}

// envInt reads a positive integer from the environment, falling back when
// the variable is unset or malformed.
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func run(opts options) error {
	fmt.Printf("Tesseract version: %s\n", ocr.EngineVersion())
	fmt.Println("Extracting text from PDF...")

	ext := khmerpdf.Open(opts.pdfPath).
		DPI(opts.dpi).
		MinKhmerRuns(opts.minRuns).
		Progress(func(page, total int) {
			fmt.Printf("Processing page %d/%d...\n", page, total)
		})
	if opts.output != "" {
		ext = ext.Output(opts.output)
	}

	text, warnings, err := ext.Text()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Println("Warning:", w.String())
	}

	if opts.output != "" {
		fmt.Printf("Extracted text saved to: %s\n", opts.output)
		return nil
	}

	fmt.Println("\nExtracted Text Preview:")
	fmt.Println(preview(text, previewLimit))
	return nil
}

// preview truncates s to limit characters, appending an ellipsis marker when
// anything was cut.
func preview(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func printTroubleshooting() {
	fmt.Fprintln(os.Stderr, "\nTroubleshooting tips:")
	fmt.Fprintln(os.Stderr, "1. Make sure Tesseract is installed: https://github.com/tesseract-ocr/tesseract")
	fmt.Fprintln(os.Stderr, "2. Install the Khmer language pack: https://github.com/tesseract-ocr/tessdata/blob/main/khm.traineddata")
	fmt.Fprintln(os.Stderr, "3. Place khm.traineddata in Tesseract's tessdata directory")
}
