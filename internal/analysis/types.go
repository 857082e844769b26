package analysis

import (
	"fmt"
	"time"
)

// Color is an 8-bit RGB swatch produced by the quantizer.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as a 6-digit lowercase hex string, e.g. "#ff8800".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PaletteColor is a palette entry as exposed over the API: the raw RGB
// triple plus its hex form so clients never re-derive it.
type PaletteColor struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// Metadata is the per-image record served by the metadata endpoint.
//
// FileSizeBytes and the formatted size are always populated; every other
// field is present only when the file decoded successfully. Absent fields
// are omitted from the JSON encoding rather than serialized as null.
type Metadata struct {
	Filename          string         `json:"filename"`
	FileSizeBytes     int64          `json:"file_size"`
	FileSizeFormatted string         `json:"file_size_formatted"`
	Width             int            `json:"width,omitempty"`
	Height            int            `json:"height,omitempty"`
	Dimensions        string         `json:"dimensions,omitempty"`
	Format            string         `json:"format,omitempty"`
	ColorMode         string         `json:"color_mode,omitempty"`
	Palette           []PaletteColor `json:"palette,omitempty"`
	Histogram         *Histogram     `json:"histogram,omitempty"`

	// ComputedAt is when the record was assembled. Informational only;
	// cached records are never invalidated during the process lifetime.
	ComputedAt time.Time `json:"-"`
}

// Decoded reports whether the record carries visual metadata or is a
// degraded size-only record.
func (m *Metadata) Decoded() bool {
	return m.Width > 0 && m.Height > 0
}

// Clone returns a deep copy. The cache hands out clones so callers can
// never mutate a cached record.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	out := *m
	if m.Palette != nil {
		out.Palette = make([]PaletteColor, len(m.Palette))
		copy(out.Palette, m.Palette)
	}
	out.Histogram = m.Histogram.clone()
	return &out
}
