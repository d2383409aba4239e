// Package render draws a frame (background, scaled source image, text
// overlays) onto a Surface and measures overlay text for hit-testing.
//
// Rendering is immediate mode: every call repaints the whole surface from the
// frame it is given, so calling Render twice with the same frame produces
// identical pixels.
package render

import (
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/caption/fonts"
	"github.com/gogpu/caption/internal/logging"
	"github.com/gogpu/caption/layout"
	"github.com/gogpu/caption/overlay"
)

// Padding is the margin added on each side of an overlay's text box for the
// guide rectangle and for hit-testing.
const Padding = 5.0

// Frame is everything needed to draw one picture.
type Frame struct {
	Width, Height int

	// Image is the source picture. Nil draws the background only.
	Image *gg.ImageBuf

	// Overlays are drawn in order, later ones on top.
	Overlays []overlay.Overlay
}

// Extent is the measured size of a piece of text.
type Extent struct {
	Width, Height float64
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	background gg.RGBA
	guides     bool
	guideColor gg.RGBA
	interp     gg.InterpolationMode
}

func defaultOptions() options {
	return options{
		background: gg.Black,
		guides:     true,
		guideColor: gg.RGBA2(1, 1, 1, 0.3),
		interp:     gg.InterpBilinear,
	}
}

// WithBackground sets the color painted under the image. It should be opaque
// so letterboxed areas never show through.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithGuides turns the translucent rectangles around overlays on or off.
func WithGuides(enabled bool) Option {
	return func(o *options) {
		o.guides = enabled
	}
}

// WithInterpolation sets how the source image is sampled when scaled.
func WithInterpolation(mode gg.InterpolationMode) Option {
	return func(o *options) {
		o.interp = mode
	}
}

// Renderer draws frames. It holds no per-frame state.
type Renderer struct {
	fonts *fonts.Resolver
	opts  options
}

// New creates a Renderer that resolves font families through fr.
func New(fr *fonts.Resolver, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{fonts: fr, opts: o}
}

// Render repaints s with f. A frame with a non-positive size is skipped and
// s keeps its previous content.
func (r *Renderer) Render(s *Surface, f Frame) {
	log := logging.Logger()
	if f.Width <= 0 || f.Height <= 0 {
		log.Warn("render: skipping frame with invalid size",
			slog.Int("width", f.Width), slog.Int("height", f.Height))
		return
	}
	if err := s.Resize(f.Width, f.Height); err != nil {
		log.Warn("render: resize failed", slog.Any("error", err))
		return
	}

	dc := s.dc
	dc.ClearWithColor(r.opts.background)

	if f.Image != nil {
		r.drawImage(dc, f)
	}
	for _, o := range f.Overlays {
		r.drawOverlay(dc, o)
	}

	log.Debug("render: frame drawn",
		slog.Int("width", f.Width),
		slog.Int("height", f.Height),
		slog.Bool("image", f.Image != nil),
		slog.Int("overlays", len(f.Overlays)))
}

func (r *Renderer) drawImage(dc *gg.Context, f Frame) {
	iw, ih := f.Image.Bounds()
	p := layout.Fit(layout.Sz(iw, ih), layout.Sz(f.Width, f.Height))
	if p.Scale <= 0 {
		return
	}
	dc.DrawImageEx(f.Image, gg.DrawImageOptions{
		X:             p.X,
		Y:             p.Y,
		DstWidth:      p.Width,
		DstHeight:     p.Height,
		Interpolation: r.opts.interp,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func (r *Renderer) drawOverlay(dc *gg.Context, o overlay.Overlay) {
	dc.SetFont(r.fonts.Face(o.Font, o.FontSize))
	dc.SetFillBrush(gg.Solid(parseColor(o.Color)))
	dc.DrawStringAnchored(norm.NFC.String(o.Text), o.X, o.Y, 0.5, 0.5)

	if !r.opts.guides {
		return
	}
	box := r.PaddedBox(o)
	dc.SetStrokeBrush(gg.Solid(r.opts.guideColor))
	dc.SetLineWidth(1)
	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	_ = dc.Stroke()
}

// Measure returns the size of text set in family at fontSize pixels. The
// width is the text advance, zero for empty text. The height is fontSize.
func (r *Renderer) Measure(s string, fontSize float64, family string) Extent {
	face := r.fonts.Face(family, fontSize)
	w, _ := text.Measure(norm.NFC.String(s), face)
	return Extent{Width: w, Height: fontSize}
}

// PaddedBox returns the overlay's text box grown by Padding on every side,
// centered on its anchor.
func (r *Renderer) PaddedBox(o overlay.Overlay) layout.Rect {
	e := r.Measure(o.Text, o.FontSize, o.Font)
	return layout.Padded(o.Center(), e.Width, e.Height, Padding)
}

// parseColor falls back to white for strings that are not hex colors.
func parseColor(hex string) gg.RGBA {
	c, err := gg.ParseHex(hex)
	if err != nil {
		logging.Logger().Debug("render: invalid overlay color, using white",
			slog.String("color", hex))
		return gg.White
	}
	return c
}
