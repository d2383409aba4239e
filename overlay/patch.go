package overlay

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrInvalidPatch is wrapped by every PatchError.
var ErrInvalidPatch = errors.New("overlay: invalid patch")

// PatchError reports a patch field whose value cannot be stored.
type PatchError struct {
	Field string
	Value any
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("overlay: invalid %s: %v", e.Field, e.Value)
}

// Unwrap returns ErrInvalidPatch.
func (e *PatchError) Unwrap() error {
	return ErrInvalidPatch
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Text     *string
	X, Y     *float64
	FontSize *float64
	Color    *string
	Font     *string
}

// Move returns a patch that sets the anchor point.
func Move(x, y float64) Patch {
	return Patch{X: &x, Y: &y}
}

// SetText returns a patch that replaces the text.
func SetText(s string) Patch {
	return Patch{Text: &s}
}

// SetFontSize returns a patch that replaces the font size.
func SetFontSize(size float64) Patch {
	return Patch{FontSize: &size}
}

// SetColor returns a patch that replaces the color.
func SetColor(hex string) Patch {
	return Patch{Color: &hex}
}

// SetFont returns a patch that replaces the font family.
func SetFont(family string) Patch {
	return Patch{Font: &family}
}

// Validate checks every set field. Coordinates and sizes must be finite,
// sizes positive, and colors parseable hex.
func (p Patch) Validate() error {
	if p.X != nil && !finite(*p.X) {
		return &PatchError{Field: "x", Value: *p.X}
	}
	if p.Y != nil && !finite(*p.Y) {
		return &PatchError{Field: "y", Value: *p.Y}
	}
	if p.FontSize != nil && !validSize(*p.FontSize) {
		return &PatchError{Field: "fontSize", Value: *p.FontSize}
	}
	if p.Color != nil {
		if _, err := gg.ParseHex(*p.Color); err != nil {
			return &PatchError{Field: "color", Value: *p.Color}
		}
	}
	return nil
}

// apply merges p into o. p must already be valid.
func (p Patch) apply(o Overlay) Overlay {
	if p.Text != nil {
		o.Text = *p.Text
	}
	if p.X != nil {
		o.X = *p.X
	}
	if p.Y != nil {
		o.Y = *p.Y
	}
	if p.FontSize != nil {
		o.FontSize = *p.FontSize
	}
	if p.Color != nil {
		o.Color = *p.Color
	}
	if p.Font != nil {
		o.Font = *p.Font
	}
	return o
}
