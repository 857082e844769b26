package analysis

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates an NRGBA image with a gradient pattern.
func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8(255 * x / width)
			g := uint8(255 * y / height)
			b := uint8(128)
			img.Set(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img
}

// createSolidImage creates an NRGBA image filled with a single color.
func createSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	return img
}

// createQuadImage creates an image whose four quadrants are solid colors.
func createQuadImage(size int, colors [4]color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := size / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := 0
			if x >= half {
				idx++
			}
			if y >= half {
				idx += 2
			}
			img.Set(x, y, colors[idx])
		}
	}

	return img
}

// writeTestPNG writes img as a PNG into dir and returns its filename.
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return name
}

// writeGarbageFile writes a file that is not a valid image.
func writeGarbageFile(t *testing.T, dir, name string, size int) string {
	t.Helper()

	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i * 7)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return name
}
