// Package layout reconstructs logical text structure from a flat stream of
// independently positioned text runs.
//
// Page-description formats place runs at absolute coordinates with no
// inherent grouping. This package recovers lines, paragraphs, reading order,
// and horizontal alignment from that geometry.
//
// # Pipeline
//
// Reconstruction is a single pass plus a refinement pass:
//
//  1. Ordering - [SortReadingOrder] total-orders runs top-to-bottom,
//     left-to-right, with a tolerance band that absorbs baseline jitter.
//  2. Grouping - [Grouper.Group] consumes the ordered sequence once,
//     merging each run into the open paragraph (same line or next line)
//     or closing it and starting a new one.
//  3. Refinement - [Grouper.Refine] estimates line height and classifies
//     alignment for every multi-line paragraph.
//
// [Grouper.Reconstruct] chains all three stages:
//
//	grouper := layout.NewGrouper()
//	paragraphs := grouper.Reconstruct(runs)
//
// # Configuration
//
// Every tolerance the heuristics use is a documented field of
// [GrouperConfig]; see [DefaultGrouperConfig] for the calibrated values.
// Thresholds that should scale with type size are expressed as multiples of
// the run's font size; fixed page-unit epsilons compensate for renderer
// jitter that is independent of type size.
//
// # Purity
//
// The engine is a pure transformation: it holds no state between calls and
// performs no I/O, so independent inputs (e.g. separate pages) can be
// reconstructed concurrently without synchronization.
package layout
