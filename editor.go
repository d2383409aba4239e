package caption

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/caption/fonts"
	"github.com/gogpu/caption/interact"
	"github.com/gogpu/caption/layout"
	"github.com/gogpu/caption/overlay"
	"github.com/gogpu/caption/render"
)

// Editor is one editing session: source image, canvas size and overlays.
//
// All state changes go through Editor methods. None of them redraws; the host
// calls Render when it wants a new frame. Editor is not safe for concurrent
// use.
type Editor struct {
	width, height int
	source        *gg.ImageBuf

	overlays *overlay.List
	renderer *render.Renderer
	surface  *render.Surface
	ctrl     *interact.Controller

	fonts     *fonts.Resolver
	ownsFonts bool
	closed    bool
}

// New creates an Editor with an empty canvas and no image.
func New(opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fr, owns := o.fonts, false
	if fr == nil {
		var err error
		fr, err = fonts.NewResolver()
		if err != nil {
			return nil, fmt.Errorf("caption: %w", err)
		}
		owns = true
	}

	var listOpts []overlay.Option
	if o.ids != nil {
		listOpts = append(listOpts, overlay.WithIDSource(o.ids))
	}

	e := &Editor{
		width:     o.width,
		height:    o.height,
		overlays:  overlay.NewList(listOpts...),
		surface:   render.NewSurface(o.width, o.height),
		fonts:     fr,
		ownsFonts: owns,
	}
	e.renderer = render.New(fr,
		render.WithGuides(o.guides),
		render.WithBackground(o.background),
	)
	e.ctrl = interact.New(e.overlays, interact.MeasureFunc(e.measure),
		interact.WithPadding(render.Padding),
		interact.WithClamp(o.clamp),
	)
	e.syncViewport()
	return e, nil
}

// Close releases the render surface and, if the Editor created it, the font
// resolver. Afterwards Render returns nil and Export fails with ErrClosed.
// Overlay and pointer operations keep working and measure text with the
// fallback face. Closing twice is a no-op.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	err := e.surface.Close()
	if e.ownsFonts {
		if ferr := e.fonts.Close(); err == nil {
			err = ferr
		}
	}
	return err
}

func (e *Editor) measure(s string, fontSize float64, family string) (float64, float64) {
	ext := e.renderer.Measure(s, fontSize, family)
	return ext.Width, ext.Height
}

// LoadImage decodes r and makes it the source image. The canvas is reset to
// the image's native size. On failure the session is left untouched.
func (e *Editor) LoadImage(r io.Reader) error {
	img, format, err := decodeImage(r)
	if err != nil {
		return err
	}
	e.setImage(img, format)
	return nil
}

// LoadImageFile is LoadImage for a file path.
func (e *Editor) LoadImageFile(path string) error {
	img, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	e.setImage(img, format)
	return nil
}

// SetImage uses an already decoded image as the source. The canvas is reset
// to its native size. An empty image is rejected.
func (e *Editor) SetImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: empty image", ErrDecode)
	}
	e.setImage(img, "image")
	return nil
}

func (e *Editor) setImage(img image.Image, format string) {
	b := img.Bounds()
	e.source = gg.ImageBufFromImage(img)
	e.width, e.height = b.Dx(), b.Dy()
	e.syncViewport()
	Logger().Info("caption: image loaded",
		slog.String("format", format),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()))
}

// HasImage reports whether a source image is loaded.
func (e *Editor) HasImage() bool {
	return e.source != nil
}

// ImageSize returns the source image's native size, or zeros without one.
func (e *Editor) ImageSize() (width, height int) {
	if e.source == nil {
		return 0, 0
	}
	return e.source.Bounds()
}

// Size returns the canvas size.
func (e *Editor) Size() (width, height int) {
	return e.width, e.height
}

// SetSize changes the canvas size. Both dimensions must be positive.
// Overlays keep their pixel positions.
func (e *Editor) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	e.width, e.height = width, height
	e.syncViewport()
	return nil
}

// SelectPreset sets the canvas to exactly p's size.
func (e *Editor) SelectPreset(p Preset) error {
	return e.SetSize(p.Width, p.Height)
}

// IsPresetSelected reports whether the canvas size equals p's size exactly.
func (e *Editor) IsPresetSelected(p Preset) bool {
	return e.width == p.Width && e.height == p.Height
}

// SelectedPreset returns the first preset matching the canvas size.
func (e *Editor) SelectedPreset() (Preset, bool) {
	for _, p := range Presets {
		if e.IsPresetSelected(p) {
			return p, true
		}
	}
	return Preset{}, false
}

// AddText adds a default overlay ("New Text", 32px white Arial) at the
// canvas center.
func (e *Editor) AddText() overlay.Overlay {
	center := layout.Pt(float64(e.width)/2, float64(e.height)/2)
	return e.overlays.Add(overlay.Default(center))
}

// AddOverlay appends o with a fresh ID. Unset style fields get defaults.
func (e *Editor) AddOverlay(o overlay.Overlay) overlay.Overlay {
	return e.overlays.Add(o)
}

// UpdateOverlay applies a partial update. Unknown ids are ignored; invalid
// values are rejected with an *overlay.PatchError.
func (e *Editor) UpdateOverlay(id overlay.ID, p overlay.Patch) error {
	return e.overlays.Update(id, p)
}

// RemoveOverlay deletes an overlay and reports whether it existed.
func (e *Editor) RemoveOverlay(id overlay.ID) bool {
	return e.overlays.Remove(id)
}

// Overlay returns the overlay with the given id.
func (e *Editor) Overlay(id overlay.ID) (overlay.Overlay, bool) {
	return e.overlays.Get(id)
}

// Overlays returns a snapshot of all overlays in paint order.
func (e *Editor) Overlays() []overlay.Overlay {
	return e.overlays.Snapshot()
}

// SetDisplay records where the canvas is shown on screen so pointer events
// can be mapped to canvas pixels. A zero rectangle means unscaled display.
func (e *Editor) SetDisplay(r layout.Rect) {
	v := e.ctrl.Viewport()
	v.Display = r
	e.ctrl.SetViewport(v)
}

func (e *Editor) syncViewport() {
	v := e.ctrl.Viewport()
	v.Raster = layout.Sz(e.width, e.height)
	e.ctrl.SetViewport(v)
}

// PointerDown starts dragging the overlay under the display-space point p.
// It reports whether an overlay was picked.
func (e *Editor) PointerDown(p layout.Point) bool {
	return e.ctrl.PointerDown(p)
}

// PointerMove drags the picked overlay and reports whether it moved, that
// is, whether the host should re-render.
func (e *Editor) PointerMove(p layout.Point) bool {
	return e.ctrl.PointerMove(p)
}

// PointerUp ends any drag.
func (e *Editor) PointerUp() {
	e.ctrl.PointerUp()
}

// PointerLeave ends any drag.
func (e *Editor) PointerLeave() {
	e.ctrl.PointerLeave()
}

// DragState returns the interaction state.
func (e *Editor) DragState() interact.State {
	return e.ctrl.State()
}

// Frame returns the current state as a render frame.
func (e *Editor) Frame() render.Frame {
	return render.Frame{
		Width:    e.width,
		Height:   e.height,
		Image:    e.source,
		Overlays: e.overlays.Snapshot(),
	}
}

// Render draws the current state and returns a copy of the pixels. It
// returns nil after Close.
func (e *Editor) Render() *image.RGBA {
	if e.closed {
		Logger().Warn("caption: render after close")
		return nil
	}
	e.renderer.Render(e.surface, e.Frame())
	return e.surface.Snapshot()
}

// Export renders the current state and encodes it as lossy WebP. Encoding
// happens in memory, so a failure never yields partial output.
func (e *Editor) Export() ([]byte, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if e.source == nil {
		return nil, ErrNoImage
	}
	e.renderer.Render(e.surface, e.Frame())

	var buf bytes.Buffer
	if err := e.surface.Encode(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: encoder produced no data", ErrExport)
	}
	Logger().Info("caption: exported",
		slog.Int("width", e.width),
		slog.Int("height", e.height),
		slog.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
