package analysis

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	// histogramSampleSize bounds histogram cost the same way the palette
	// sample does, just at a higher resolution.
	histogramSampleSize = 200

	// HistogramBuckets is the number of values per channel after
	// decimating the 256 normalized buckets by histogramStride.
	HistogramBuckets = 64

	histogramStride = 4
)

// Histogram holds per-channel brightness distributions. Each channel has
// exactly HistogramBuckets values in [0,100], normalized against that
// channel's own peak bucket. Channels are independent: a spike in red
// never rescales green or blue.
type Histogram struct {
	Red   []float64 `json:"red"`
	Green []float64 `json:"green"`
	Blue  []float64 `json:"blue"`
}

func (h *Histogram) clone() *Histogram {
	if h == nil {
		return nil
	}
	out := &Histogram{
		Red:   make([]float64, len(h.Red)),
		Green: make([]float64, len(h.Green)),
		Blue:  make([]float64, len(h.Blue)),
	}
	copy(out.Red, h.Red)
	copy(out.Green, h.Green)
	copy(out.Blue, h.Blue)
	return out
}

// BuildHistogram computes the normalized RGB histogram of an image.
//
// The image is reduced to fit within 200x200, each channel is counted
// into 256 buckets, every bucket is scaled so the channel's maximum
// becomes 100, and the result is decimated to 64 values by keeping
// indices 0, 4, 8, ... 252. Decimation, not averaging: downstream
// consumers rely on bit-identical output for identical pixel content.
func BuildHistogram(img *image.NRGBA) *Histogram {
	small := imaging.Fit(img, histogramSampleSize, histogramSampleSize, imaging.Box)

	var red, green, blue [256]int
	bounds := small.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := small.Pix[small.PixOffset(bounds.Min.X, y):small.PixOffset(bounds.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			red[row[i]]++
			green[row[i+1]]++
			blue[row[i+2]]++
		}
	}

	return &Histogram{
		Red:   normalizeChannel(&red),
		Green: normalizeChannel(&green),
		Blue:  normalizeChannel(&blue),
	}
}

func normalizeChannel(counts *[256]int) []float64 {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	out := make([]float64, HistogramBuckets)
	if max == 0 {
		return out
	}
	for i := 0; i < HistogramBuckets; i++ {
		out[i] = float64(counts[i*histogramStride]) * 100 / float64(max)
	}
	return out
}
