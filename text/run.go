package text

import (
	"strings"

	"github.com/tsawler/reflow/model"
)

// TextRun represents a positioned, styled text fragment with absolute
// page-space coordinates. Runs are produced by an upstream parser and
// treated as immutable by this module.
type TextRun struct {
	// Text is the fragment content. Runs that trim to the empty string
	// are dropped before grouping.
	Text string

	// X is the left edge and Y the baseline, in a bottom-up page space
	// (Y increases upward).
	X, Y float64

	// Width and Height are the bounding extent of the run
	Width, Height float64

	// FontFamily is the resolved font family name
	FontFamily string

	// FontSize is the font size in page units
	FontSize float64

	// FontWeight is the numeric font weight (400 normal, 700 bold, ...)
	FontWeight model.FontWeight

	// FontStyle is the slant (normal or italic)
	FontStyle model.FontStyle

	// Color is an opaque normalized color token; compared by equality
	Color string

	// GroupID is an optional semantic tag from the source document
	// (e.g. a marked-content id). Empty means absent. Runs with
	// different non-empty tags never merge.
	GroupID string
}

// Right returns the X coordinate of the run's right edge
func (r TextRun) Right() float64 {
	return r.X + r.Width
}

// Style returns the run's resolved style as a single value
func (r TextRun) Style() model.Style {
	return model.Style{
		FontFamily: r.FontFamily,
		FontSize:   r.FontSize,
		FontWeight: r.FontWeight,
		FontStyle:  r.FontStyle,
		Color:      r.Color,
	}
}

// BBox returns the run's bounding box. Y is the baseline, so the box
// bottom sits on the baseline; ascender overshoot is not modeled.
func (r TextRun) BBox() model.BBox {
	return model.NewBBox(r.X, r.Y, r.Width, r.Height)
}

// IsWhitespace returns true if the run's text trims to the empty string
func (r TextRun) IsWhitespace() bool {
	return strings.TrimSpace(r.Text) == ""
}

// FilterWhitespace returns a new slice containing only runs with visible
// content, preserving their relative order. The input is not modified.
func FilterWhitespace(runs []TextRun) []TextRun {
	if len(runs) == 0 {
		return nil
	}

	filtered := make([]TextRun, 0, len(runs))
	for _, r := range runs {
		if r.IsWhitespace() {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
