package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dilharaj/airgallery/internal/metrics"
)

// Assembler combines decoder, quantizer and histogram output into one
// Metadata record per image. It is the failure boundary of the analysis
// subsystem: decode errors and panics degrade to a size-only record, and
// nothing above it ever observes a raw decoding failure. The only error
// it returns is ErrFileMissing, which callers must not cache.
type Assembler struct {
	dec         Decoder
	log         *slog.Logger
	paletteSize int
}

func NewAssembler(dec Decoder, log *slog.Logger) *Assembler {
	return &Assembler{
		dec:         dec,
		log:         log,
		paletteSize: DefaultPaletteSize,
	}
}

// WithPaletteSize overrides the maximum number of palette swatches.
func (a *Assembler) WithPaletteSize(n int) *Assembler {
	if n > 0 {
		a.paletteSize = n
	}
	return a
}

// Assemble builds the metadata record for filename under root.
func (a *Assembler) Assemble(root, filename string) (meta *Metadata, err error) {
	path := filepath.Join(root, filepath.FromSlash(filename))

	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileMissing, filename)
	}

	sizeOnly := func() *Metadata {
		return &Metadata{
			Filename:          filename,
			FileSizeBytes:     info.Size(),
			FileSizeFormatted: FormatFileSize(info.Size()),
			ComputedAt:        time.Now(),
		}
	}

	// A panic anywhere in decode or analysis degrades to a fresh
	// size-only record instead of crossing the subsystem boundary.
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic during image analysis", "file", filename, "panic", r)
			metrics.DecodeFailuresTotal.Inc()
			meta, err = sizeOnly(), nil
		}
	}()

	start := time.Now()
	decoded, decErr := a.dec.Decode(path)
	if decErr != nil {
		if errors.Is(decErr, ErrFileMissing) {
			return nil, decErr
		}
		if !errors.Is(decErr, ErrDecodeUnavailable) {
			a.log.Debug("decode failed, serving size-only metadata", "file", filename, "error", decErr)
			metrics.DecodeFailuresTotal.Inc()
		}
		return sizeOnly(), nil
	}
	metrics.DecodeDuration.Observe(time.Since(start).Seconds())

	meta = sizeOnly()
	meta.Width = decoded.Width
	meta.Height = decoded.Height
	meta.Dimensions = fmt.Sprintf("%d×%d", decoded.Width, decoded.Height)
	meta.Format = decoded.Format
	meta.ColorMode = decoded.ColorMode
	meta.Palette = toPaletteColors(ExtractPalette(decoded.Pixels, a.paletteSize))
	meta.Histogram = BuildHistogram(decoded.Pixels)
	return meta, nil
}

func toPaletteColors(colors []Color) []PaletteColor {
	out := make([]PaletteColor, len(colors))
	for i, c := range colors {
		out[i] = PaletteColor{R: c.R, G: c.G, B: c.B, Hex: c.Hex()}
	}
	return out
}
