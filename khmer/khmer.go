// Package khmer provides detection of Khmer-script content in text.
//
// The package's central concept is the "run": a maximal substring whose code
// points all fall within the Khmer Unicode block (U+1780 through U+17FF).
// Counting runs is a cheap way to tell whether a PDF's embedded text layer
// actually carries Khmer content, as opposed to the handful of stray glyphs
// a scanned document typically yields.
package khmer

// Boundaries of the Khmer Unicode block.
const (
	BlockLo rune = 0x1780
	BlockHi rune = 0x17FF
)

// InBlock reports whether r falls within the Khmer Unicode block.
func InBlock(r rune) bool {
	return r >= BlockLo && r <= BlockHi
}

// Contains reports whether s contains at least one Khmer code point.
func Contains(s string) bool {
	for _, r := range s {
		if InBlock(r) {
			return true
		}
	}
	return false
}

// CountRuns returns the number of maximal runs of Khmer code points in s.
// Adjacent Khmer characters belong to the same run; any non-Khmer character,
// including spaces and zero-width spaces used as word separators, ends the
// current run.
func CountRuns(s string) int {
	count := 0
	inRun := false
	for _, r := range s {
		if InBlock(r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return count
}
