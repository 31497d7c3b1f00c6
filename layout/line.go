package layout

import (
	"strings"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// Line represents a single line of text within a paragraph: an ordered,
// non-empty run sequence sharing one visual baseline.
type Line struct {
	// Runs are the text runs on this line, left to right in reading order
	Runs []text.TextRun

	// Text is the assembled text content of the line
	Text string

	// BBox is the bounding box of the line
	BBox model.BBox

	// Baseline is the Y coordinate of the line's first run
	Baseline float64

	// Direction is the dominant text direction (set during refinement)
	Direction text.Direction
}

// newLine creates a line containing a single run
func newLine(r text.TextRun) Line {
	return Line{
		Runs:     []text.TextRun{r},
		Text:     r.Text,
		BBox:     r.BBox(),
		Baseline: r.Y,
	}
}

// append adds a run to the right end of the line. The run's text is joined
// with a single space unless it already begins with whitespace.
func (ln *Line) append(r text.TextRun) {
	ln.Runs = append(ln.Runs, r)

	if leadsWithSpace(r.Text) {
		ln.Text += r.Text
	} else {
		ln.Text += " " + r.Text
	}

	if r.Right() > ln.BBox.Right() {
		ln.BBox.Width = r.Right() - ln.BBox.X
	}
	if r.Height > ln.BBox.Height {
		ln.BBox.Height = r.Height
	}
}

// leadsWithSpace reports whether s begins with a whitespace character
func leadsWithSpace(s string) bool {
	return s != strings.TrimLeft(s, " \t\n\r")
}

// Left returns the X coordinate of the line's left edge (its first run)
func (ln *Line) Left() float64 {
	if ln == nil || len(ln.Runs) == 0 {
		return 0
	}
	return ln.Runs[0].X
}

// Right returns the X coordinate of the line's right edge: the right
// extent of its last run
func (ln *Line) Right() float64 {
	if ln == nil || len(ln.Runs) == 0 {
		return 0
	}
	return ln.Runs[len(ln.Runs)-1].Right()
}

// Width returns the horizontal extent from the line's left to right edge
func (ln *Line) Width() float64 {
	return ln.Right() - ln.Left()
}

// RunCount returns the number of runs on the line
func (ln *Line) RunCount() int {
	if ln == nil {
		return 0
	}
	return len(ln.Runs)
}

// WordCount returns an approximate word count for the line
func (ln *Line) WordCount() int {
	if ln == nil || ln.Text == "" {
		return 0
	}
	return len(strings.Fields(ln.Text))
}

// IsEmpty returns true if the line has no visible text content
func (ln *Line) IsEmpty() bool {
	if ln == nil {
		return true
	}
	return strings.TrimSpace(ln.Text) == ""
}
