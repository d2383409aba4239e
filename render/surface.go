package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gen2brain/webp"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Quality is the fixed lossy WebP quality used for exports.
const Quality = 80

// ErrEncode is wrapped by every encoding failure.
var ErrEncode = errors.New("render: encode failed")

// Surface is the pixel target frames are drawn into. It owns a gg.Context
// and is reused across frames.
type Surface struct {
	dc *gg.Context
}

// NewSurface creates a surface of the given size in pixels.
func NewSurface(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.dc.Height()
}

// Resize changes the surface size. Both dimensions must be positive.
func (s *Surface) Resize(width, height int) error {
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("render: resize surface: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	_ = s.dc.FlushGPU()
	img := s.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return dst
}

// Encode writes the current pixels as lossy WebP at Quality.
func (s *Surface) Encode(w io.Writer) error {
	if err := webp.Encode(w, s.Snapshot(), webp.Options{Quality: Quality}); err != nil {
		return fmt.Errorf("%w: webp: %w", ErrEncode, err)
	}
	return nil
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: png: %w", ErrEncode, err)
	}
	return nil
}

// Close releases the underlying context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
