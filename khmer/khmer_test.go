package khmer

import "testing"

func TestInBlock(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"block start", 0x1780, true},
		{"block end", 0x17FF, true},
		{"KA", 'ក', true},
		{"coeng", 0x17D2, true},
		{"just below block", 0x177F, false},
		{"just above block", 0x1800, false},
		{"latin", 'a', false},
		{"digit", '3', false},
		{"space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBlock(tt.r); got != tt.want {
				t.Errorf("InBlock(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if Contains("hello world") {
		t.Error("expected no Khmer content in latin text")
	}
	if !Contains("report សួស្តី 2023") {
		t.Error("expected Khmer content to be detected")
	}
	if Contains("") {
		t.Error("expected no Khmer content in empty string")
	}
}

func TestCountRuns(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"latin only", "The quick brown fox", 0},
		{"single word", "សួស្តី", 1},
		{"word with coeng stack", "ខ្មែរ", 1},
		{"two words split by space", "សួស្តី ខ្មែរ", 2},
		{"words split by zero-width space", "សួស្តី​ខ្មែរ​ប្រទេស", 3},
		{"khmer embedded in latin", "see ខ្មែរ and សួស្តី here", 2},
		{"run split by digit", "ក1ខ", 2},
		{"newlines between runs", "ក\nខ\nគ\nឃ\nង", 5},
		{"block boundary runes", string([]rune{0x1780, 0x17FF}), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountRuns(tt.s); got != tt.want {
				t.Errorf("CountRuns(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}
