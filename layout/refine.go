package layout

import (
	"math"

	"github.com/tsawler/reflow/text"
)

// Refine post-processes grouped paragraphs in place: it annotates text
// direction, and for every multi-line paragraph estimates the line height
// and classifies horizontal alignment. Single-line paragraphs keep a zero
// LineHeight and AlignUnknown.
func (g *Grouper) Refine(paragraphs []Paragraph) {
	for i := range paragraphs {
		p := &paragraphs[i]

		for j := range p.Lines {
			p.Lines[j].Direction = text.DetectDirection(p.Lines[j].Text)
		}
		p.Direction = dominantDirection(p.Lines)

		if len(p.Lines) < 2 {
			continue
		}

		g.estimateLineHeight(p)
		p.Alignment = g.classifyAlignment(p)
	}
}

// estimateLineHeight sets the paragraph's line height to the mean baseline
// distance between adjacent lines, measured on each line's first run. Only
// positive distances contribute, guarding against out-of-order artifacts.
// When an estimate exists, the paragraph height becomes line count times
// line height.
func (g *Grouper) estimateLineHeight(p *Paragraph) {
	total := 0.0
	count := 0

	for i := 0; i < len(p.Lines)-1; i++ {
		diff := p.Lines[i].Runs[0].Y - p.Lines[i+1].Runs[0].Y
		if diff > 0 {
			total += diff
			count++
		}
	}

	if count == 0 {
		return
	}

	p.LineHeight = total / float64(count)
	p.BBox.Height = float64(len(p.Lines)) * p.LineHeight
}

// classifyAlignment classifies a multi-line paragraph as centered, right
// aligned, or left aligned. A paragraph is centered only if every line sits
// within tolerance of its expected centered offset, and right aligned only
// if every line's right edge sits within tolerance of the paragraph's right
// edge. Center is checked first: a paragraph satisfying both predicates
// (e.g. one whose lines are all near full width) classifies as centered.
// Left is the default and also covers justified text.
func (g *Grouper) classifyAlignment(p *Paragraph) Alignment {
	tol := g.config.AlignmentTolerance
	centered := true
	rightAligned := true

	for i := range p.Lines {
		ln := &p.Lines[i]
		lineLeft := ln.Left()
		lineRight := ln.Right()
		lineWidth := lineRight - lineLeft

		expectedOffset := (p.BBox.Width - lineWidth) / 2
		actualOffset := lineLeft - p.BBox.X
		if math.Abs(expectedOffset-actualOffset) > tol {
			centered = false
		}
		if math.Abs(p.BBox.Right()-lineRight) > tol {
			rightAligned = false
		}
		if !centered && !rightAligned {
			break
		}
	}

	if centered {
		return AlignCenter
	}
	if rightAligned {
		return AlignRight
	}
	return AlignLeft
}

// dominantDirection returns the direction the majority of lines carry,
// falling back to LTR when any strong direction exists and Neutral when
// none does
func dominantDirection(lines []Line) text.Direction {
	ltrCount := 0
	rtlCount := 0

	for i := range lines {
		switch lines[i].Direction {
		case text.LTR:
			ltrCount++
		case text.RTL:
			rtlCount++
		}
	}

	if rtlCount > ltrCount {
		return text.RTL
	}
	if ltrCount > 0 {
		return text.LTR
	}
	return text.Neutral
}
