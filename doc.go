// Package caption composites a raster image with positioned text labels onto
// a fixed-size canvas and exports the result as a single WebP image.
//
// # Overview
//
// An Editor holds one editing session: the source image, the canvas size and
// the ordered list of text overlays. The host drives it from its event loop
// and calls Render explicitly after any change; there are no hidden
// subscriptions.
//
//	ed, err := caption.New()
//	if err != nil {
//	    return err
//	}
//	defer ed.Close()
//
//	if err := ed.LoadImageFile("photo.jpg"); err != nil {
//	    return err
//	}
//	ed.SelectPreset(caption.Presets[0]) // 1200x630
//	ed.AddText()                        // "New Text" at the canvas center
//
//	ed.Render()
//	data, err := ed.Export()
//
// # Architecture
//
// The work is split into small packages, leaf first:
//   - layout: fit-inside placement, padded boxes, display-to-canvas mapping
//   - overlay: the overlay list and its Add/Update/Remove operations
//   - fonts: family name to gg text face resolution with a bundled fallback
//   - render: draws a Frame onto a Surface with gg and encodes it
//   - interact: pointer hit-testing and drag state
//
// # Coordinate System
//
// Canvas pixels, origin at the top-left, X right and Y down. Overlay
// positions are the visual center of the text. Pointer events arrive in
// display space and are mapped to canvas pixels through the display rectangle
// set with SetDisplay.
//
// # Logging
//
// caption is silent by default. Call SetLogger to route diagnostics to a
// slog.Logger; the same logger is handed to gg.
package caption
