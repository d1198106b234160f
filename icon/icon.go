// Package icon decodes the preview image embedded in a tool document.
//
// Icons are stored as base64 text. The decoded bytes may be any format
// registered with the image package; PNG, JPEG, GIF, BMP, TIFF and WebP are
// registered by this package.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/posture/internal/filters"
)

// ErrUnsupportedFormat is returned when the icon bytes are not in a
// registered image format.
var ErrUnsupportedFormat = errors.New("icon: unsupported image format")

// ErrEmpty is returned for an icon element without data.
var ErrEmpty = errors.New("icon: no image data")

// Decoder turns raw image bytes into an image.
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte) (image.Image, error)

// Decode calls f(data).
func (f DecoderFunc) Decode(data []byte) (image.Image, error) { return f(data) }

// StandardDecoder decodes any format registered with the image package.
type StandardDecoder struct{}

// Decode decodes data and discards the format name.
func (StandardDecoder) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w (%d bytes)", ErrUnsupportedFormat, len(data))
	}
	if err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}
	return img, nil
}

// DecodeBase64 decodes base64 text and then the image it holds. A nil
// decoder means StandardDecoder.
func DecodeBase64(text string, dec Decoder) (image.Image, error) {
	if dec == nil {
		dec = StandardDecoder{}
	}

	data, err := filters.Base64Decode([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return dec.Decode(data)
}
