package layout

// GrouperConfig holds every tolerance the reconstruction heuristics use.
// Each value balances false merges (unrelated text fused into one
// paragraph) against false splits (one logical paragraph broken into many).
type GrouperConfig struct {
	// SortBandEpsilon is the fixed Y band, in page units, within which two
	// runs sort left-to-right instead of top-to-bottom. It absorbs baseline
	// jitter from kerning and rendering and is deliberately independent of
	// font size (default: 5.0)
	SortBandEpsilon float64

	// SameLineMinTolerance is the floor, in page units, for the same-line
	// baseline test (default: 2.0)
	SameLineMinTolerance float64

	// SameLineFontFactor scales the same-line baseline tolerance with the
	// run's font size, so large-type headings are not split by sub-pixel
	// jitter: tolerance = max(SameLineMinTolerance, fontSize*factor)
	// (default: 0.25)
	SameLineFontFactor float64

	// StyleFontSizeTolerance is the maximum font-size difference, in page
	// units, for two runs to count as the same style (default: 1.0)
	StyleFontSizeTolerance float64

	// SameLineFontSizeSlack is the looser font-size tolerance applied when
	// testing runs on one baseline, tolerating mixed-weight runs within a
	// line (default: 2.0)
	SameLineFontSizeSlack float64

	// WideGapFontFactor is the horizontal gap, as a multiple of font size,
	// beyond which a same-baseline run is treated as a separate column or
	// block (default: 3.0)
	WideGapFontFactor float64

	// NextLineMaxFactor bounds the vertical gap, as a multiple of font
	// size, for a run to continue the open paragraph on a new line;
	// it covers plausible single and double line spacing (default: 2.5)
	NextLineMaxFactor float64

	// LeftAlignTolerance is how far, in page units, a new line's left edge
	// may sit from the paragraph origin and still continue the paragraph
	// (default: 20.0)
	LeftAlignTolerance float64

	// LeftAlignLooseFactor is the looser left-edge tolerance, as a multiple
	// of font size, used when group-id or color continuity already ties the
	// run to the open paragraph (default: 4.0)
	LeftAlignLooseFactor float64

	// AlignmentTolerance is the per-line tolerance, in page units, for the
	// center and right alignment predicates in refinement (default: 5.0)
	AlignmentTolerance float64
}

// DefaultGrouperConfig returns the calibrated default tolerances
func DefaultGrouperConfig() GrouperConfig {
	return GrouperConfig{
		SortBandEpsilon:        5.0,
		SameLineMinTolerance:   2.0,
		SameLineFontFactor:     0.25,
		StyleFontSizeTolerance: 1.0,
		SameLineFontSizeSlack:  2.0,
		WideGapFontFactor:      3.0,
		NextLineMaxFactor:      2.5,
		LeftAlignTolerance:     20.0,
		LeftAlignLooseFactor:   4.0,
		AlignmentTolerance:     5.0,
	}
}
