package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrUndecodable is returned when uploaded bytes are not a supported image.
var ErrUndecodable = errors.New("image could not be decoded")

// Decode turns raw image bytes into an in-memory pixel grid.
//
// Parameters:
//   - data: Encoded image bytes. Supported formats are PNG, JPEG, GIF, BMP,
//     TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the format.
//   - string: The format name reported by the decoder (e.g. "png", "jpeg").
//   - error: Wraps ErrUndecodable if the bytes are empty or not a valid image.
//
// Nothing is retained between calls; every decoded image belongs to the caller.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty input", ErrUndecodable)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: zero-sized image", ErrUndecodable)
	}

	return img, format, nil
}

// LoadFile reads an image file from disk and decodes it.
//
// It returns the raw bytes alongside the decoded image so callers can hand
// the same payload to the pipeline without a second read.
func LoadFile(path string) ([]byte, image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to open image: %w", err)
	}

	img, format, err := Decode(data)
	if err != nil {
		return nil, nil, "", err
	}

	return data, img, format, nil
}

// Dimensions contains the width and height of an image.
type Dimensions struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// DimensionsOf returns the pixel dimensions of img.
func DimensionsOf(img image.Image) Dimensions {
	b := img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}
