package caption

import "errors"

// Sentinel errors returned by Editor.
var (
	// ErrDecode is wrapped when an image cannot be decoded.
	ErrDecode = errors.New("caption: decode image")

	// ErrInvalidSize is returned for a canvas size that is not positive.
	ErrInvalidSize = errors.New("caption: canvas size must be positive")

	// ErrNoImage is returned by Export before any image is loaded.
	ErrNoImage = errors.New("caption: no image loaded")

	// ErrExport is wrapped when the current frame cannot be encoded.
	ErrExport = errors.New("caption: export")

	// ErrClosed is returned by Export after Close.
	ErrClosed = errors.New("caption: editor closed")
)
