// Package interact turns pointer events into overlay moves.
//
// A Controller is a two-state machine. PointerDown picks an overlay under the
// pointer and starts a drag, PointerMove moves it, PointerUp or PointerLeave
// ends the drag. The controller never writes overlay fields directly: every
// move goes through Model.Update.
package interact

import (
	"log/slog"

	"github.com/gogpu/caption/internal/logging"
	"github.com/gogpu/caption/layout"
	"github.com/gogpu/caption/overlay"
)

// Model is the overlay collection the controller reads and updates.
type Model interface {
	Snapshot() []overlay.Overlay
	Update(id overlay.ID, p overlay.Patch) error
}

// Measurer reports the text box of an overlay before padding.
type Measurer interface {
	Measure(text string, fontSize float64, family string) (width, height float64)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(text string, fontSize float64, family string) (width, height float64)

// Measure calls f.
func (f MeasureFunc) Measure(text string, fontSize float64, family string) (width, height float64) {
	return f(text, fontSize, family)
}

// State is the controller state.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means an overlay follows the pointer.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithClamp keeps dragged anchors inside the canvas raster. The default is
// unclamped: overlays may be dragged partly or fully off the canvas.
func WithClamp(enabled bool) Option {
	return func(c *Controller) {
		c.clamp = enabled
	}
}

// WithPadding sets the hit margin around each text box.
func WithPadding(pad float64) Option {
	return func(c *Controller) {
		c.padding = pad
	}
}

// Controller maps pointer input to overlay updates. It is not safe for
// concurrent use.
type Controller struct {
	model    Model
	measure  Measurer
	viewport layout.Viewport
	padding  float64
	clamp    bool

	state  State
	target overlay.ID
	offset layout.Point
}

// New creates an idle controller.
func New(m Model, ms Measurer, opts ...Option) *Controller {
	c := &Controller{
		model:   m,
		measure: ms,
		padding: 5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetViewport sets how display-space pointer positions map to canvas pixels.
func (c *Controller) SetViewport(v layout.Viewport) {
	c.viewport = v
}

// Viewport returns the current display mapping.
func (c *Controller) Viewport() layout.Viewport {
	return c.viewport
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Target returns the overlay being dragged.
func (c *Controller) Target() (overlay.ID, bool) {
	return c.target, c.state == Dragging
}

// HitTest returns the first overlay, in stored order, whose padded box
// contains the canvas point p. Earlier overlays win where boxes overlap.
func (c *Controller) HitTest(p layout.Point) (overlay.Overlay, bool) {
	for _, o := range c.model.Snapshot() {
		w, h := c.measure.Measure(o.Text, o.FontSize, o.Font)
		if layout.Padded(o.Center(), w, h, c.padding).Contains(p) {
			return o, true
		}
	}
	return overlay.Overlay{}, false
}

// PointerDown starts a drag if the display-space point p lands on an
// overlay, and reports whether it did. The grab offset is kept so the
// overlay does not jump to the pointer.
func (c *Controller) PointerDown(p layout.Point) bool {
	pos := c.viewport.ToCanvas(p)
	o, ok := c.HitTest(pos)
	if !ok {
		return false
	}
	c.state = Dragging
	c.target = o.ID
	c.offset = o.Center().Sub(pos)
	logging.Logger().Debug("interact: drag started",
		slog.Int64("overlay", int64(o.ID)),
		slog.Float64("offsetX", c.offset.X),
		slog.Float64("offsetY", c.offset.Y))
	return true
}

// PointerMove moves the dragged overlay so it keeps its grab offset from the
// display-space point p. It reports whether an update was issued. If the
// overlay has been removed meanwhile the update is a no-op and the drag
// continues until PointerUp.
func (c *Controller) PointerMove(p layout.Point) bool {
	if c.state != Dragging {
		return false
	}
	anchor := c.viewport.ToCanvas(p).Add(c.offset)
	if c.clamp {
		anchor = c.viewport.Clamp(anchor)
	}
	if err := c.model.Update(c.target, overlay.Move(anchor.X, anchor.Y)); err != nil {
		logging.Logger().Debug("interact: move rejected",
			slog.Int64("overlay", int64(c.target)), slog.Any("error", err))
		return false
	}
	return true
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	c.state = Idle
	c.target = 0
	c.offset = layout.Point{}
}

// PointerLeave ends any drag, like PointerUp.
func (c *Controller) PointerLeave() {
	c.PointerUp()
}
