package model

import (
	"math"
	"testing"
)

func TestPoint_Distance(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}

	if d := p1.Distance(p2); math.Abs(d-5) > 0.001 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}

func TestBBox_Edges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 {
		t.Errorf("Left: expected 10, got %v", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right: expected 110, got %v", b.Right())
	}
	if b.Bottom() != 20 {
		t.Errorf("Bottom: expected 20, got %v", b.Bottom())
	}
	if b.Top() != 70 {
		t.Errorf("Top: expected 70, got %v", b.Top())
	}
}

func TestBBox_Center(t *testing.T) {
	b := NewBBox(0, 0, 100, 50)
	c := b.Center()

	if c.X != 50 || c.Y != 25 {
		t.Errorf("Expected center (50, 25), got (%v, %v)", c.X, c.Y)
	}
}

func TestBBox_Contains(t *testing.T) {
	b := NewBBox(10, 10, 100, 100)

	if !b.Contains(Point{X: 50, Y: 50}) {
		t.Error("Expected point inside")
	}
	if b.Contains(Point{X: 5, Y: 50}) {
		t.Error("Expected point outside")
	}
	// Edges are inclusive
	if !b.Contains(Point{X: 10, Y: 10}) {
		t.Error("Expected edge point inside")
	}
}

func TestBBox_Intersects(t *testing.T) {
	b1 := NewBBox(0, 0, 50, 50)
	b2 := NewBBox(25, 25, 50, 50)
	b3 := NewBBox(100, 100, 50, 50)

	if !b1.Intersects(b2) {
		t.Error("Expected overlap")
	}
	if b1.Intersects(b3) {
		t.Error("Expected no overlap")
	}
}

func TestBBox_Union(t *testing.T) {
	b1 := NewBBox(0, 0, 50, 50)
	b2 := NewBBox(100, 100, 50, 50)

	u := b1.Union(b2)
	if u.X != 0 || u.Y != 0 || u.Width != 150 || u.Height != 150 {
		t.Errorf("Unexpected union: %+v", u)
	}
}

func TestBBox_Validity(t *testing.T) {
	if !NewBBox(0, 0, 10, 10).IsValid() {
		t.Error("Expected valid box")
	}
	if NewBBox(0, 0, 0, 10).IsValid() {
		t.Error("Expected zero-width box to be invalid")
	}
	if !NewBBox(0, 0, 0, 10).IsEmpty() {
		t.Error("Expected zero-width box to be empty")
	}
	if a := NewBBox(0, 0, 10, 5).Area(); a != 50 {
		t.Errorf("Expected area 50, got %v", a)
	}
}

func TestFontWeight_IsBold(t *testing.T) {
	if FontWeightNormal.IsBold() {
		t.Error("400 is not bold")
	}
	if !FontWeightBold.IsBold() {
		t.Error("700 is bold")
	}
	if !FontWeightSemiBold.IsBold() {
		t.Error("600 is bold")
	}
}

func TestFontStyle_String(t *testing.T) {
	if FontStyleNormal.String() != "normal" {
		t.Errorf("Expected 'normal', got %q", FontStyleNormal.String())
	}
	if FontStyleItalic.String() != "italic" {
		t.Errorf("Expected 'italic', got %q", FontStyleItalic.String())
	}
}

func TestStyle_ValueEquality(t *testing.T) {
	a := Style{FontFamily: "Helvetica", FontSize: 12, FontWeight: FontWeightNormal, Color: "#000"}
	b := Style{FontFamily: "Helvetica", FontSize: 12, FontWeight: FontWeightNormal, Color: "#000"}

	if a != b {
		t.Error("Identical styles should compare equal")
	}

	b.Color = "#111"
	if a == b {
		t.Error("Differing color should compare unequal")
	}
}
