package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/reflow/text"
)

func TestSortReadingOrder_Empty(t *testing.T) {
	if got := SortReadingOrder(nil); got != nil {
		t.Errorf("Expected nil for empty input, got %v", got)
	}
}

func TestSortReadingOrder_TopToBottom(t *testing.T) {
	runs := []text.TextRun{
		makeRun("bottom", 72, 100, 50, 12),
		makeRun("top", 72, 700, 50, 12),
		makeRun("middle", 72, 400, 50, 12),
	}

	sorted := SortReadingOrder(runs)

	want := []string{"top", "middle", "bottom"}
	for i, w := range want {
		if sorted[i].Text != w {
			t.Errorf("Position %d: expected %q, got %q", i, w, sorted[i].Text)
		}
	}
}

func TestSortReadingOrder_JitterBandFallsToX(t *testing.T) {
	// Baselines within the 5-unit band sort left to right
	runs := []text.TextRun{
		makeRun("second", 150, 702, 50, 12),
		makeRun("third", 250, 698, 50, 12),
		makeRun("first", 72, 700, 50, 12),
	}

	sorted := SortReadingOrder(runs)

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if sorted[i].Text != w {
			t.Errorf("Position %d: expected %q, got %q", i, w, sorted[i].Text)
		}
	}
}

func TestSortReadingOrder_BandIsFixed(t *testing.T) {
	// 6 units apart is outside the band regardless of font size:
	// vertical order wins even though X order disagrees
	runs := []text.TextRun{
		makeRun("lower", 72, 694, 50, 48),
		makeRun("upper", 300, 700, 50, 48),
	}

	sorted := SortReadingOrder(runs)

	if sorted[0].Text != "upper" || sorted[1].Text != "lower" {
		t.Errorf("Expected vertical order outside the band, got %q then %q", sorted[0].Text, sorted[1].Text)
	}
}

func TestSortReadingOrder_InputNotModified(t *testing.T) {
	runs := []text.TextRun{
		makeRun("b", 72, 100, 50, 12),
		makeRun("a", 72, 700, 50, 12),
	}
	before := make([]text.TextRun, len(runs))
	copy(before, runs)

	SortReadingOrder(runs)

	if !reflect.DeepEqual(runs, before) {
		t.Error("SortReadingOrder must not modify its input")
	}
}

func TestSortReadingOrder_Stable(t *testing.T) {
	// Identical coordinates: input order preserved
	runs := []text.TextRun{
		makeRun("first", 72, 700, 50, 12),
		makeRun("second", 72, 700, 50, 12),
	}

	sorted := SortReadingOrder(runs)

	if sorted[0].Text != "first" || sorted[1].Text != "second" {
		t.Error("Equal keys should preserve input order")
	}
}

func TestSortReadingOrder_Deterministic(t *testing.T) {
	runs := []text.TextRun{
		makeRun("c", 72, 698, 50, 12),
		makeRun("a", 10, 702, 50, 12),
		makeRun("b", 40, 700, 50, 12),
		makeRun("d", 72, 300, 50, 12),
	}

	first := SortReadingOrder(runs)
	second := SortReadingOrder(runs)

	if !reflect.DeepEqual(first, second) {
		t.Error("Sorting the same input twice should yield identical output")
	}
}
