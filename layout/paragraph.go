package layout

import (
	"strings"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// Alignment represents the classified horizontal alignment of a paragraph
type Alignment int

const (
	// AlignUnknown means alignment was not classified. Single-line
	// paragraphs always stay unknown: alignment is only meaningful for
	// multi-line blocks.
	AlignUnknown Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns a string representation of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paragraph is a reconstructed logical text block: one or more lines
// sharing reading flow.
type Paragraph struct {
	// Lines are the text lines, in first-appearance order
	Lines []Line

	// Text is the assembled content: run texts in line-then-run order,
	// space-joined. Lines are joined with a space, never a newline, so a
	// paragraph stays a single reflowable block.
	Text string

	// BBox is the paragraph's bounding box. X and Y are the origin of the
	// first run of the first line; Width is the running maximum of
	// per-line right extents relative to X. Height is derived from
	// LineHeight during refinement when a line-height estimate exists.
	BBox model.BBox

	// Style is the representative style: the style of the first run
	Style model.Style

	// LineHeight is the estimated distance between consecutive baselines.
	// Zero means no estimate (single-line paragraphs, or no positive
	// baseline gap was observed).
	LineHeight float64

	// Alignment is the classified horizontal alignment; AlignUnknown for
	// single-line paragraphs
	Alignment Alignment

	// Direction is the dominant text direction (set during refinement)
	Direction text.Direction

	// Index is the paragraph's position in reading order (0-based)
	Index int
}

// newParagraph starts a paragraph with a single line holding one run
func newParagraph(r text.TextRun) Paragraph {
	return Paragraph{
		Lines: []Line{newLine(r)},
		BBox:  model.NewBBox(r.X, r.Y, r.Width, r.Height),
		Style: r.Style(),
	}
}

// lastLine returns a pointer to the paragraph's current last line
func (p *Paragraph) lastLine() *Line {
	return &p.Lines[len(p.Lines)-1]
}

// appendSameLine adds a run to the current last line and widens the
// paragraph to cover the run's right extent
func (p *Paragraph) appendSameLine(r text.TextRun) {
	p.lastLine().append(r)
	if w := r.Right() - p.BBox.X; w > p.BBox.Width {
		p.BBox.Width = w
	}
}

// appendNextLine starts a new line with the run. The paragraph width grows
// to the new line's own width when that exceeds the current width.
func (p *Paragraph) appendNextLine(r text.TextRun) {
	p.Lines = append(p.Lines, newLine(r))
	if r.Width > p.BBox.Width {
		p.BBox.Width = r.Width
	}
}

// assembleText joins the per-line texts with single spaces
func (p *Paragraph) assembleText() {
	if len(p.Lines) == 1 {
		p.Text = p.Lines[0].Text
		return
	}

	parts := make([]string, len(p.Lines))
	for i, ln := range p.Lines {
		parts[i] = ln.Text
	}
	p.Text = strings.Join(parts, " ")
}

// LineCount returns the number of lines in the paragraph
func (p *Paragraph) LineCount() int {
	if p == nil {
		return 0
	}
	return len(p.Lines)
}

// RunCount returns the total number of runs across all lines
func (p *Paragraph) RunCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, ln := range p.Lines {
		n += len(ln.Runs)
	}
	return n
}

// WordCount returns an approximate word count for the paragraph
func (p *Paragraph) WordCount() int {
	if p == nil || p.Text == "" {
		return 0
	}
	return len(strings.Fields(p.Text))
}

// FirstLine returns the first line of the paragraph
func (p *Paragraph) FirstLine() *Line {
	if p == nil || len(p.Lines) == 0 {
		return nil
	}
	return &p.Lines[0]
}

// LastLine returns the last line of the paragraph
func (p *Paragraph) LastLine() *Line {
	if p == nil || len(p.Lines) == 0 {
		return nil
	}
	return &p.Lines[len(p.Lines)-1]
}

// HasLineHeight returns true if refinement produced a line-height estimate
func (p *Paragraph) HasLineHeight() bool {
	if p == nil {
		return false
	}
	return p.LineHeight > 0
}

// ContainsPoint returns true if the point is within the paragraph's
// bounding box
func (p *Paragraph) ContainsPoint(x, y float64) bool {
	if p == nil {
		return false
	}
	return p.BBox.Contains(model.Point{X: x, Y: y})
}

// Runs returns all runs of the paragraph in reading order
func (p *Paragraph) Runs() []text.TextRun {
	if p == nil {
		return nil
	}
	var runs []text.TextRun
	for _, ln := range p.Lines {
		runs = append(runs, ln.Runs...)
	}
	return runs
}
