package layout

import (
	"math"
	"sort"

	"github.com/tsawler/reflow/text"
)

// SortReadingOrder returns the runs in reading order: top to bottom, left
// to right. Two runs whose baselines differ by no more than the default
// [GrouperConfig.SortBandEpsilon] are treated as vertically equal and fall
// back to horizontal order, so small baseline jitter within one visual line
// does not disturb left-to-right order.
//
// The sort is stable: runs that compare equal keep their input order, which
// makes the whole pipeline deterministic for identical input sequences.
// The input slice is not modified.
func SortReadingOrder(runs []text.TextRun) []text.TextRun {
	return sortReadingOrder(runs, DefaultGrouperConfig().SortBandEpsilon)
}

func sortReadingOrder(runs []text.TextRun, band float64) []text.TextRun {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]text.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		dy := sorted[i].Y - sorted[j].Y
		if math.Abs(dy) > band {
			return dy > 0 // higher Y first (top of page)
		}
		// Within the band: same visual line, order by X
		return sorted[i].X < sorted[j].X
	})

	return sorted
}
