package caption

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/caption/fonts"
	"github.com/gogpu/caption/overlay"
)

// Option configures an Editor during creation.
//
// Example:
//
//	// Defaults: 1200x630 canvas, system fonts, guides drawn
//	ed, _ := caption.New()
//
//	// Host-independent rendering with a shared resolver
//	fr, _ := fonts.NewResolver(fonts.WithSystemFonts(false))
//	ed, _ := caption.New(caption.WithFonts(fr), caption.WithSize(1080, 1080))
type Option func(*options)

type options struct {
	width, height int
	fonts         *fonts.Resolver
	guides        bool
	clamp         bool
	background    gg.RGBA
	ids           overlay.IDSource
}

// defaultOptions mirrors the initial state of a new session: an empty
// 1200x630 canvas.
func defaultOptions() options {
	return options{
		width:      1200,
		height:     630,
		guides:     true,
		background: gg.Black,
	}
}

// WithSize sets the initial canvas size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithFonts shares an existing font resolver. The Editor does not close a
// resolver it did not create.
func WithFonts(fr *fonts.Resolver) Option {
	return func(o *options) {
		o.fonts = fr
	}
}

// WithGuides controls the translucent rectangles drawn around overlays. They
// are part of rendered and exported frames. Enabled by default.
func WithGuides(enabled bool) Option {
	return func(o *options) {
		o.guides = enabled
	}
}

// WithClamp keeps dragged overlays inside the canvas. Disabled by default.
func WithClamp(enabled bool) Option {
	return func(o *options) {
		o.clamp = enabled
	}
}

// WithBackground sets the letterbox color. It should be opaque.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithIDSource replaces the clock-based overlay ID source.
func WithIDSource(src overlay.IDSource) Option {
	return func(o *options) {
		o.ids = src
	}
}
