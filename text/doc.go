// Package text defines the positioned text-run input record for paragraph
// reconstruction, along with helpers for filtering runs and detecting the
// writing direction of their content.
//
// # Text Runs
//
// A [TextRun] is an atomic, independently positioned, styled string fragment
// as emitted by an upstream page-description parser. Runs carry absolute
// page-space coordinates (bottom-up, Y grows upward; X is the left edge, Y
// is the baseline) and a fully resolved [model.Style].
//
// Runs whose text is entirely whitespace carry no layout information and are
// discarded before grouping; see [FilterWhitespace].
//
// # Semantic Group IDs
//
// A run may carry an optional GroupID, an opaque tag linking runs that the
// source document already marks as belonging to one structural block (for
// example a tagged-PDF marked-content id). The layout engine uses it only as
// a negative signal: two runs carrying different non-empty tags are never
// merged. An absent tag never forces a decision by itself.
//
// # Direction
//
// [DetectDirection] classifies a string as LTR, RTL, or Neutral by counting
// strong directional characters. The result is informational metadata on
// reconstructed lines and paragraphs; it never influences grouping.
package text
