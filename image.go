package caption

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders for LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage decodes any registered format.
func decodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: empty %s image", ErrDecode, format)
	}
	return img, format, nil
}

// decodeFile opens and decodes the image at path.
func decodeFile(path string) (image.Image, string, error) {
	// #nosec G304 -- image path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()
	return decodeImage(f)
}
