// Package game implements the colortrap session engine: level catalog,
// forbidden-color sequence generation, board generation, the session state
// machine and the timer driver. It contains no UI or platform dependencies
// so the rules stay pure and testable.
package game

// Color is one of the four palette colors a board button can show.
type Color int

const (
	Blue Color = iota
	Green
	Yellow
	Red
)

// Palette is the full color set in fixed order. Arity-limited subsets are
// always prefixes of this slice, so levels 1-2 play on blue/green only.
var Palette = []Color{Blue, Green, Yellow, Red}

// String returns the spoken/displayed name of the color.
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// PaletteSubset returns a fresh copy of the first arity palette colors.
func PaletteSubset(arity int) []Color {
	if arity < 1 || arity > len(Palette) {
		arity = len(Palette)
	}
	return append([]Color(nil), Palette[:arity]...)
}
