package model

// FontWeight represents a numeric font weight on the common 100-900 scale.
type FontWeight int

const (
	FontWeightThin     FontWeight = 100
	FontWeightLight    FontWeight = 300
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemiBold FontWeight = 600
	FontWeightBold     FontWeight = 700
	FontWeightBlack    FontWeight = 900
)

// IsBold returns true for weights of 600 and above
func (w FontWeight) IsBold() bool {
	return w >= FontWeightSemiBold
}

// FontStyle represents the slant of a font
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// String returns a string representation of the font style
func (s FontStyle) String() string {
	if s == FontStyleItalic {
		return "italic"
	}
	return "normal"
}

// Style is the resolved style of a text run. It is a plain value type:
// callers resolve fonts and colors upstream and pass the result by value,
// never a reference into external style state.
//
// All fields compare by equality except FontSize, which the layout engine
// compares with a numeric tolerance.
type Style struct {
	// FontFamily is the resolved family name (e.g. "Helvetica")
	FontFamily string

	// FontSize is the size in page units (points for PDF sources)
	FontSize float64

	// FontWeight is the numeric weight (400 normal, 700 bold, ...)
	FontWeight FontWeight

	// FontStyle is the slant (normal or italic)
	FontStyle FontStyle

	// Color is an opaque normalized color token (e.g. "#1a1a1a").
	// An empty string means the source carried no color; it still
	// participates in equality as-is.
	Color string
}
