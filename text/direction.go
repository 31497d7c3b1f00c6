package text

import (
	"unicode"
)

// Direction represents the writing direction of text.
// It is used to annotate reconstructed lines and paragraphs that contain
// bidirectional (bidi) content.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// rtlScripts are the Unicode scripts with right-to-left writing order that
// commonly appear in page-description documents.
var rtlScripts = []*unicode.RangeTable{
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Nko,
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional
// characters and returns the direction with the higher count, or Neutral if
// no strong directional characters are present.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch GetCharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	// No strong directional characters
	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}

	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// GetCharDirection returns the inherent direction of a single Unicode
// character. Digits, punctuation, whitespace, and symbols are Neutral;
// characters of RTL scripts (Arabic, Hebrew, Syriac, Thaana, N'Ko) return
// RTL; everything else, including CJK, returns LTR.
func GetCharDirection(r rune) Direction {
	// Neutral classes first, before any script check
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}

	for _, script := range rtlScripts {
		if unicode.Is(script, r) {
			return RTL
		}
	}

	// LTR covers Latin, Cyrillic, Greek, Indic, Thai, and modern CJK usage
	return LTR
}
