// Package layout computes where things go on the canvas: the fit-inside
// placement of the source image, padded label boxes, and the mapping from
// on-screen pointer coordinates to canvas pixels.
//
// All coordinates are canvas pixels with the origin at the top-left, X
// increasing right and Y increasing down, matching gg.
package layout

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a position in canvas or display space.
type Point = gg.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return gg.Pt(x, y) }

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Sz builds a Size from integer dimensions.
func Sz(w, h int) Size {
	return Size{W: float64(w), H: float64(h)}
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return !(s.W > 0) || !(s.H > 0)
}

// Placement describes how a source image is drawn into a target canvas.
type Placement struct {
	// Scale is the uniform factor applied to both source dimensions.
	Scale float64

	// X, Y is the top-left corner of the drawn image.
	X, Y float64

	// Width, Height is the drawn size (source size times Scale).
	Width, Height float64
}

// Rect returns the drawn area as a rectangle.
func (p Placement) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Fit scales src uniformly so it fits inside dst and centers it.
//
// The scale is min(dst.W/src.W, dst.H/src.H), so the image is letterboxed
// along one axis when the aspect ratios differ. A non-positive dimension on
// either side gives a zero scale: the placement collapses to a point at the
// center of dst.
func Fit(src, dst Size) Placement {
	s := 0.0
	if !src.Empty() && !dst.Empty() {
		s = math.Min(dst.W/src.W, dst.H/src.H)
	}
	w := src.W * s
	h := src.H * s
	return Placement{
		Scale:  s,
		X:      (dst.W - w) / 2,
		Y:      (dst.H - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Padded returns a w×h box centered at c, grown by pad on every side.
func Padded(c Point, w, h, pad float64) Rect {
	return Rect{
		X: c.X - w/2 - pad,
		Y: c.Y - h/2 - pad,
		W: w + 2*pad,
		H: h + 2*pad,
	}
}

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Viewport relates the canvas raster to the area it occupies on screen.
// The two differ whenever the host scales the canvas for display.
type Viewport struct {
	// Raster is the canvas's intrinsic pixel size.
	Raster Size

	// Display is the on-screen rectangle the canvas is shown in.
	Display Rect
}

// ToCanvas maps a display-space point into canvas pixels. A viewport with no
// display area maps by identity.
func (v Viewport) ToCanvas(p Point) Point {
	if !(v.Display.W > 0) || !(v.Display.H > 0) || v.Raster.Empty() {
		return p
	}
	return Pt(
		(p.X-v.Display.X)*v.Raster.W/v.Display.W,
		(p.Y-v.Display.Y)*v.Raster.H/v.Display.H,
	)
}

// Clamp limits p to the raster bounds [0, W] × [0, H].
func (v Viewport) Clamp(p Point) Point {
	if v.Raster.Empty() {
		return p
	}
	return Pt(
		math.Max(0, math.Min(p.X, v.Raster.W)),
		math.Max(0, math.Min(p.Y, v.Raster.H)),
	)
}
