// Package analysis extracts visual summaries from raster images: a
// dominant-color palette, a normalized RGB histogram, and basic metadata
// (dimensions, format, color mode, file size). Results are memoized in a
// process-lifetime cache so repeated requests never re-decode.
package analysis

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrDecodeUnavailable = errors.New("analysis: decoding unavailable")
	ErrDecodeFailed      = errors.New("analysis: file cannot be decoded as an image")
	ErrFileMissing       = errors.New("analysis: file does not exist")
)

// DecodedImage is the pixel-access surface handed to the quantizer and
// histogram builder. Pixels is always NRGBA so both consumers read plain
// 8-bit channel values regardless of the source color model.
type DecodedImage struct {
	Pixels    *image.NRGBA
	Width     int
	Height    int
	Format    string // "JPEG", "PNG", "GIF", "WEBP", "BMP", "TIFF"
	ColorMode string // "RGB", "RGBA", "GRAYSCALE", "CMYK", "UNKNOWN"
}

// Decoder opens an image file and exposes its pixels. Implementations
// return ErrDecodeFailed for corrupt or non-image files, ErrFileMissing
// when the path vanished, and ErrDecodeUnavailable when the decoder has
// no decoding capability at all.
type Decoder interface {
	Decode(path string) (*DecodedImage, error)
}

// FullDecoder decodes JPEG, PNG, GIF, WebP, BMP and TIFF files via the
// registered stdlib and x/image codecs.
type FullDecoder struct{}

func NewFullDecoder() *FullDecoder {
	return &FullDecoder{}
}

func (d *FullDecoder) Decode(path string) (*DecodedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	// Clone converts any source color model to NRGBA in one pass.
	pixels := imaging.Clone(img)
	bounds := pixels.Bounds()

	return &DecodedImage{
		Pixels:    pixels,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Format:    strings.ToUpper(format),
		ColorMode: colorMode(img),
	}, nil
}

// SizeOnlyDecoder is the degraded-capability variant: every Decode call
// reports ErrDecodeUnavailable, so the assembler produces size-only
// records for all files.
type SizeOnlyDecoder struct{}

func NewSizeOnlyDecoder() *SizeOnlyDecoder {
	return &SizeOnlyDecoder{}
}

func (d *SizeOnlyDecoder) Decode(path string) (*DecodedImage, error) {
	return nil, ErrDecodeUnavailable
}

func colorMode(img image.Image) string {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return "GRAYSCALE"
	case *image.NRGBA:
		return alphaMode(m.Opaque())
	case *image.NRGBA64:
		return alphaMode(m.Opaque())
	case *image.RGBA:
		return alphaMode(m.Opaque())
	case *image.RGBA64:
		return alphaMode(m.Opaque())
	case *image.YCbCr:
		return "RGB"
	case *image.CMYK:
		return "CMYK"
	case *image.Paletted:
		return alphaMode(m.Opaque())
	default:
		return "UNKNOWN"
	}
}

func alphaMode(opaque bool) string {
	if opaque {
		return "RGB"
	}
	return "RGBA"
}
