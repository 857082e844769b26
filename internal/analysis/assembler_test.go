package analysis

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/dilharaj/airgallery/internal/logger"
)

// TestAssembler_FullRecord tests assembly of a decodable image.
func TestAssembler_FullRecord(t *testing.T) {
	dir := t.TempDir()
	name := writeTestPNG(t, dir, "red.png", createSolidImage(1, 1, color.NRGBA{R: 255, A: 255}))

	a := NewAssembler(NewFullDecoder(), logger.NewTestLogger())
	meta, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	if meta.Filename != "red.png" {
		t.Errorf("Filename = %q, want %q", meta.Filename, "red.png")
	}
	if meta.Width != 1 || meta.Height != 1 {
		t.Errorf("dimensions = %dx%d, want 1x1", meta.Width, meta.Height)
	}
	if meta.Dimensions != "1×1" {
		t.Errorf("Dimensions = %q, want %q", meta.Dimensions, "1×1")
	}
	if meta.Format != "PNG" {
		t.Errorf("Format = %q, want %q", meta.Format, "PNG")
	}
	if meta.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes = %d, want > 0", meta.FileSizeBytes)
	}
	if meta.FileSizeFormatted == "" {
		t.Error("FileSizeFormatted is empty")
	}
	if len(meta.Palette) != 1 {
		t.Fatalf("palette has %d entries, want 1", len(meta.Palette))
	}
	want := PaletteColor{R: 252, G: 4, B: 4, Hex: "#fc0404"}
	if meta.Palette[0] != want {
		t.Errorf("Palette[0] = %+v, want %+v", meta.Palette[0], want)
	}
	if meta.Histogram == nil {
		t.Fatal("Histogram is nil")
	}
	if got := meta.Histogram.Green[0]; got != 100 {
		t.Errorf("green[0] = %f, want 100", got)
	}
	if !meta.Decoded() {
		t.Error("Decoded() = false for a decoded image")
	}
}

// TestAssembler_GarbageFile tests the degraded-mode contract: a 10-byte
// garbage file named like a JPEG yields size-only metadata and no error.
func TestAssembler_GarbageFile(t *testing.T) {
	dir := t.TempDir()
	name := writeGarbageFile(t, dir, "broken.jpg", 10)

	a := NewAssembler(NewFullDecoder(), logger.NewTestLogger())
	meta, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatalf("Assemble() error = %v, want nil (degraded mode)", err)
	}

	if meta.FileSizeBytes != 10 {
		t.Errorf("FileSizeBytes = %d, want 10", meta.FileSizeBytes)
	}
	if meta.Width != 0 || meta.Height != 0 {
		t.Errorf("dimensions = %dx%d, want absent", meta.Width, meta.Height)
	}
	if meta.Palette != nil {
		t.Errorf("Palette = %v, want absent", meta.Palette)
	}
	if meta.Histogram != nil {
		t.Error("Histogram present, want absent")
	}
	if meta.Decoded() {
		t.Error("Decoded() = true for a degraded record")
	}
}

// TestAssembler_DegradedJSONShape tests that absent fields are omitted
// from the JSON encoding rather than serialized as null or zero.
func TestAssembler_DegradedJSONShape(t *testing.T) {
	dir := t.TempDir()
	name := writeGarbageFile(t, dir, "broken.jpg", 10)

	a := NewAssembler(NewFullDecoder(), logger.NewTestLogger())
	meta, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	if m["file_size"] != float64(10) {
		t.Errorf("file_size = %v, want 10", m["file_size"])
	}
	for _, key := range []string{"width", "height", "format", "color_mode", "palette", "histogram", "dimensions"} {
		if _, ok := m[key]; ok {
			t.Errorf("degraded JSON contains %q, want it omitted", key)
		}
	}
}

// TestAssembler_MissingFile tests the not-found signal.
func TestAssembler_MissingFile(t *testing.T) {
	a := NewAssembler(NewFullDecoder(), logger.NewTestLogger())

	_, err := a.Assemble(t.TempDir(), "gone.png")

	if !errors.Is(err, ErrFileMissing) {
		t.Errorf("Assemble() error = %v, want ErrFileMissing", err)
	}
}

// TestAssembler_SizeOnlyDecoder tests that a valid image still degrades
// when the injected decoder has no decoding capability.
func TestAssembler_SizeOnlyDecoder(t *testing.T) {
	dir := t.TempDir()
	name := writeTestPNG(t, dir, "valid.png", createTestImage(30, 30))

	a := NewAssembler(NewSizeOnlyDecoder(), logger.NewTestLogger())
	meta, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	if meta.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes = %d, want > 0", meta.FileSizeBytes)
	}
	if meta.Decoded() {
		t.Error("Decoded() = true, want degraded record")
	}
}

// TestAssembler_Deterministic tests that two independent assemblies of
// the same file produce identical JSON.
func TestAssembler_Deterministic(t *testing.T) {
	dir := t.TempDir()
	name := writeTestPNG(t, dir, "gradient.png", createTestImage(137, 91))

	a := NewAssembler(NewFullDecoder(), logger.NewTestLogger())

	first, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatal(err)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("independent assemblies differ:\n%s\n%s", firstJSON, secondJSON)
	}
}

// panicDecoder panics on every call, standing in for a codec bug.
type panicDecoder struct{}

func (panicDecoder) Decode(path string) (*DecodedImage, error) {
	panic("codec exploded")
}

// TestAssembler_RecoverPanic tests that a decoder panic degrades instead
// of propagating.
func TestAssembler_RecoverPanic(t *testing.T) {
	dir := t.TempDir()
	name := writeTestPNG(t, dir, "valid.png", createTestImage(10, 10))

	a := NewAssembler(panicDecoder{}, logger.NewTestLogger())
	meta, err := a.Assemble(dir, name)
	if err != nil {
		t.Fatalf("Assemble() error = %v, want nil", err)
	}
	if meta == nil || meta.Decoded() {
		t.Errorf("meta = %+v, want size-only record", meta)
	}
	if meta.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes = %d, want > 0", meta.FileSizeBytes)
	}
}
