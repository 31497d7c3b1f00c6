// Package reflow reconstructs logical text structure - paragraphs, lines,
// reading order, and alignment - from flat streams of positioned text runs
// extracted from page-description documents.
//
// Basic usage:
//
//	paragraphs := reflow.Reconstruct(runs)
//	for _, p := range paragraphs {
//	    fmt.Println(p.Text)
//	}
//
// With tuned tolerances:
//
//	config := layout.DefaultGrouperConfig()
//	config.LeftAlignTolerance = 30
//	paragraphs := reflow.ReconstructWithConfig(runs, config)
//
// For multi-page documents, [Processor] reconstructs pages concurrently
// with bounded parallelism while preserving page order:
//
//	proc, err := reflow.NewProcessor(reflow.NewDefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	pages, truncated, err := proc.ReconstructDocument(ctx, pageRuns)
//
// For lower-level access to the individual pipeline stages, the layout
// package is also available.
package reflow

import (
	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/text"
)

// Reconstruct reorders, groups, and refines a single page of text runs
// into paragraphs using the default tolerances. It is a pure function: safe
// to call concurrently on independent inputs, and the input slice is never
// modified.
func Reconstruct(runs []text.TextRun) []layout.Paragraph {
	return layout.NewGrouper().Reconstruct(runs)
}

// ReconstructWithConfig is [Reconstruct] with custom tolerances
func ReconstructWithConfig(runs []text.TextRun, config layout.GrouperConfig) []layout.Paragraph {
	return layout.NewGrouperWithConfig(config).Reconstruct(runs)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	proc := reflow.Must(reflow.NewProcessor(reflow.NewDefaultConfig()))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
