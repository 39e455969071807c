// Package imagemeta probes pixel dimensions from raw image bytes and
// renders proportional renditions. Decode failures are ordinary error
// values: a corrupt or unsupported image is still storable as an opaque
// file, so callers degrade instead of failing the operation.
package imagemeta

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Probe decodes just enough of data to report pixel dimensions.
func Probe(data []byte) (width, height int, err error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Resize decodes data, scales it to exactly width x height and
// re-encodes it in the format implied by contentType. Callers are
// expected to pass dimensions that already went through the
// proportional calculation; this function does not preserve aspect
// ratio on its own.
func Resize(data []byte, width, height int, contentType string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, formatFor(contentType)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// formatFor maps a content type to an output encoding. Types imaging
// cannot encode fall back to PNG, which is lossless.
func formatFor(contentType string) imaging.Format {
	switch contentType {
	case "image/jpeg":
		return imaging.JPEG
	case "image/gif":
		return imaging.GIF
	case "image/bmp":
		return imaging.BMP
	case "image/tiff":
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}
