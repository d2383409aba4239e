// Package overlay holds the ordered collection of text labels placed on the
// canvas.
//
// Slice order is paint order: later overlays are drawn on top. All mutation
// goes through List so that renderers and controllers only ever see
// snapshots.
package overlay

import (
	"math"

	"github.com/gogpu/gg"
)

// ID identifies an overlay within a List.
type ID int64

// Defaults used when an overlay is added without the field set.
const (
	DefaultText     = "New Text"
	DefaultFontSize = 32.0
	DefaultColor    = "#ffffff"
	DefaultFont     = "Arial"
)

// Families lists the font families offered for selection. Any other name is
// accepted too; names the renderer cannot resolve fall back to its default
// face.
var Families = []string{
	"Arial",
	"Helvetica",
	"Times New Roman",
	"Georgia",
	"Courier New",
}

// Overlay is one positioned, styled text label.
type Overlay struct {
	ID   ID
	Text string

	// X, Y is the visual center of the text, in canvas pixels.
	X, Y float64

	// FontSize is in pixels and always positive.
	FontSize float64

	// Color is a hex color string such as "#ffffff".
	Color string

	// Font is a font family name.
	Font string
}

// Center returns the overlay's anchor point.
func (o Overlay) Center() gg.Point {
	return gg.Pt(o.X, o.Y)
}

// Default returns a new overlay centered at c with the default styling.
// The ID is assigned by List.Add.
func Default(c gg.Point) Overlay {
	return Overlay{
		Text:     DefaultText,
		X:        c.X,
		Y:        c.Y,
		FontSize: DefaultFontSize,
		Color:    DefaultColor,
		Font:     DefaultFont,
	}
}

// withDefaults fills unset or unusable style fields.
func (o Overlay) withDefaults() Overlay {
	if !validSize(o.FontSize) {
		o.FontSize = DefaultFontSize
	}
	if _, err := gg.ParseHex(o.Color); err != nil {
		o.Color = DefaultColor
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if !finite(o.X) {
		o.X = 0
	}
	if !finite(o.Y) {
		o.Y = 0
	}
	return o
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validSize(v float64) bool {
	return finite(v) && v > 0
}
