package model

import "math"

// Point represents a 2D point in PDF user space (origin bottom-left, y grows upward).
type Point struct {
	X, Y float64
}

// Round rounds half toward positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
// Column ranges and row tolerances are tuned against coordinates rounded this way.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Item is a positioned run of text on a page.
//
// X and Y are rounded coordinates used for column classification and row
// membership. RawX and RawY keep the decoder's unrounded values; the row
// boundary estimator and header line ordering work on those.
type Item struct {
	Text string
	X, Y float64
	RawX float64
	RawY float64
}

// NewItem creates an item from unrounded decoder coordinates.
func NewItem(text string, x, y float64) Item {
	return Item{
		Text: text,
		X:    Round(x),
		Y:    Round(y),
		RawX: x,
		RawY: y,
	}
}

// Position returns the rounded position of the item.
func (it Item) Position() Point {
	return Point{X: it.X, Y: it.Y}
}

// RowBoundary is an inclusive y-interval believed to hold exactly one table row.
//
// In PDF coordinates Upper is the numerically smaller value; the names follow
// the reflection walk that produces them, not the visual page direction.
type RowBoundary struct {
	Upper float64
	Lower float64
}

// Contains reports whether y lies inside the boundary, both ends inclusive.
func (b RowBoundary) Contains(y float64) bool {
	return y >= b.Upper && y <= b.Lower
}

// Height returns the extent of the boundary. A zero height is valid.
func (b RowBoundary) Height() float64 {
	return b.Lower - b.Upper
}
