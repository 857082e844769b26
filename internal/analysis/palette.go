package analysis

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

const (
	// DefaultPaletteSize is the number of swatches returned when the
	// caller does not ask for a specific count.
	DefaultPaletteSize = 5

	// paletteSampleSize bounds quantization cost: the image is reduced
	// to fit within this square before pixels are counted.
	paletteSampleSize = 100

	// binWidth groups each 0-255 channel into 32 equal bins of 8 levels,
	// reducing the color space to 32^3 = 32768 representable buckets.
	binWidth = 8
)

// ExtractPalette returns up to maxColors representative swatches ordered
// by descending pixel frequency. Ties are broken by the order in which a
// bucket was first encountered during the row-major scan, so identical
// pixel content always yields an identical palette.
//
// This is single-pass frequency ranking over a coarsened color space,
// not k-means; no centroid refinement happens. Images with fewer occupied
// buckets than maxColors return only the occupied ones.
func ExtractPalette(img *image.NRGBA, maxColors int) []Color {
	if maxColors <= 0 {
		maxColors = DefaultPaletteSize
	}

	small := imaging.Fit(img, paletteSampleSize, paletteSampleSize, imaging.Box)

	type bucket struct {
		count int
		seen  int // first-encounter rank, used as a deterministic tie-break
	}
	buckets := make(map[uint16]*bucket)
	order := 0

	bounds := small.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := small.Pix[small.PixOffset(bounds.Min.X, y):small.PixOffset(bounds.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			r := row[i] / binWidth
			g := row[i+1] / binWidth
			b := row[i+2] / binWidth
			key := uint16(r)<<10 | uint16(g)<<5 | uint16(b)
			if bk, ok := buckets[key]; ok {
				bk.count++
			} else {
				buckets[key] = &bucket{count: 1, seen: order}
				order++
			}
		}
	}

	type ranked struct {
		key uint16
		bucket
	}
	all := make([]ranked, 0, len(buckets))
	for key, bk := range buckets {
		all = append(all, ranked{key: key, bucket: *bk})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].seen < all[j].seen
	})

	if len(all) > maxColors {
		all = all[:maxColors]
	}

	palette := make([]Color, len(all))
	for i, rb := range all {
		palette[i] = Color{
			R: binCenter(uint8(rb.key >> 10 & 0x1f)),
			G: binCenter(uint8(rb.key >> 5 & 0x1f)),
			B: binCenter(uint8(rb.key & 0x1f)),
		}
	}
	return palette
}

// binCenter maps a bin index back to the middle intensity of its bin.
func binCenter(bin uint8) uint8 {
	return bin*binWidth + binWidth/2
}
