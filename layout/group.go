package layout

import (
	"math"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// Grouper reconstructs paragraphs from positioned text runs
type Grouper struct {
	config GrouperConfig
}

// NewGrouper creates a grouper with the default tolerances
func NewGrouper() *Grouper {
	return &Grouper{
		config: DefaultGrouperConfig(),
	}
}

// NewGrouperWithConfig creates a grouper with custom tolerances
func NewGrouperWithConfig(config GrouperConfig) *Grouper {
	return &Grouper{
		config: config,
	}
}

// Config returns the grouper's tolerances
func (g *Grouper) Config() GrouperConfig {
	return g.config
}

// Reconstruct runs the full pipeline over an unordered run sequence:
// whitespace-only runs are dropped, the rest are sorted into reading order,
// grouped into paragraphs, and refined. The input slice is not modified.
func (g *Grouper) Reconstruct(runs []text.TextRun) []Paragraph {
	filtered := text.FilterWhitespace(runs)
	if len(filtered) == 0 {
		return nil
	}

	ordered := sortReadingOrder(filtered, g.config.SortBandEpsilon)
	paragraphs := g.Group(ordered)
	g.Refine(paragraphs)
	return paragraphs
}

// mergeDecision is the outcome of testing a run against the open paragraph
type mergeDecision int

const (
	noMerge mergeDecision = iota
	mergeSameLine
	mergeNextLine
)

// Group consumes runs already in reading order and partitions them into
// paragraphs in a single forward pass. Every non-whitespace run lands in
// exactly one line of exactly one paragraph, preserving input order.
//
// The returned paragraphs are unrefined: LineHeight and Alignment are left
// at their zero values until [Grouper.Refine] runs.
func (g *Grouper) Group(runs []text.TextRun) []Paragraph {
	var paragraphs []Paragraph
	var current *Paragraph
	var last text.TextRun

	for _, r := range runs {
		// Whitespace-only runs never start, extend, or close a paragraph
		if r.IsWhitespace() {
			continue
		}

		if current == nil {
			p := newParagraph(r)
			current = &p
			last = r
			continue
		}

		switch g.classify(current, last, r) {
		case mergeSameLine:
			current.appendSameLine(r)
		case mergeNextLine:
			current.appendNextLine(r)
		default:
			paragraphs = append(paragraphs, *current)
			p := newParagraph(r)
			current = &p
		}
		last = r
	}

	if current != nil {
		paragraphs = append(paragraphs, *current)
	}

	for i := range paragraphs {
		paragraphs[i].Index = i
		paragraphs[i].assembleText()
	}

	return paragraphs
}

// classify decides whether run r extends the open paragraph on the current
// line, continues it on a new line, or closes it. last is the immediately
// preceding accepted run.
func (g *Grouper) classify(current *Paragraph, last, r text.TextRun) mergeDecision {
	cfg := g.config

	// Differing semantic tags veto any merge, regardless of geometry
	if r.GroupID != "" && last.GroupID != "" && r.GroupID != last.GroupID {
		return noMerge
	}

	// Same-line: baseline tolerance scales with font size so large-type
	// headings survive sub-pixel jitter
	sameLineTol := math.Max(cfg.SameLineMinTolerance, r.FontSize*cfg.SameLineFontFactor)
	if math.Abs(r.Y-last.Y) < sameLineTol {
		gap := r.X - last.Right()
		wideGap := gap > r.FontSize*cfg.WideGapFontFactor
		if !wideGap && styleCompatible(current.Style, r, cfg.SameLineFontSizeSlack) {
			return mergeSameLine
		}
		// A same-baseline run across a wide gap is a separate column;
		// it cannot be a next-line candidate either (no vertical drop)
		return noMerge
	}

	// Next-line: a plausible single/double line spacing below the last
	// accepted run, left edge near the paragraph origin
	verticalGap := last.Y - r.Y
	if verticalGap > 0 && verticalGap < r.FontSize*cfg.NextLineMaxFactor {
		leftTol := cfg.LeftAlignTolerance
		if groupContinuity(last, r) {
			if loose := r.FontSize * cfg.LeftAlignLooseFactor; loose > leftTol {
				leftTol = loose
			}
		}
		if math.Abs(r.X-current.BBox.X) < leftTol &&
			styleCompatible(current.Style, r, cfg.StyleFontSizeTolerance) {
			return mergeNextLine
		}
	}

	return noMerge
}

// groupContinuity reports whether the source document already ties the two
// runs to one block: a shared semantic tag, or a shared explicit color.
// Continuity loosens the left-edge tolerance for hanging indents and list
// bodies; its absence never forces a decision.
func groupContinuity(last, r text.TextRun) bool {
	if r.GroupID != "" && r.GroupID == last.GroupID {
		return true
	}
	return r.Color != "" && r.Color == last.Color
}

// styleCompatible tests a run against a paragraph's representative style.
// Family, weight, slant, and color compare by equality; font size compares
// within sizeTol.
func styleCompatible(style model.Style, r text.TextRun, sizeTol float64) bool {
	return r.FontFamily == style.FontFamily &&
		math.Abs(r.FontSize-style.FontSize) < sizeTol &&
		r.FontWeight == style.FontWeight &&
		r.FontStyle == style.FontStyle &&
		r.Color == style.Color
}
