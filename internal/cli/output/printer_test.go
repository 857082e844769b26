package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := New(WithOutput(&buf), WithQuiet(true), WithNoColor(true))

	p.Printf("raw %d\n", 1)
	p.Success("done")
	p.Info("info")
	p.Warn("warn")
	p.Header("title")
	p.KeyValue("k", "v")
	p.Swatch("#fc0404", "detail")

	if buf.Len() != 0 {
		t.Errorf("quiet printer wrote output: %q", buf.String())
	}
}

func TestPrinter_TextMode(t *testing.T) {
	var buf bytes.Buffer
	p := New(WithOutput(&buf), WithNoColor(true))

	p.Success("analyzed %s", "red.png")
	p.KeyValue("Format", "PNG")
	p.Swatch("#fc0404", "(252, 4, 4)")

	out := buf.String()
	for _, want := range []string{"analyzed red.png", "Format: PNG", "#fc0404 (252, 4, 4)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinter_JSONSuppressesText(t *testing.T) {
	var buf bytes.Buffer
	p := New(WithOutput(&buf), WithJSON(true), WithNoColor(true))

	if !p.IsJSON() {
		t.Fatal("IsJSON() = false")
	}

	p.Success("should not appear")
	p.Header("nor this")

	if buf.Len() != 0 {
		t.Errorf("text leaked into JSON mode: %q", buf.String())
	}
}

func TestPrinter_PrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := New(WithOutput(&buf), WithJSON(true), WithNoColor(true))

	if err := p.PrintResult(map[string]int{"total": 3}); err != nil {
		t.Fatal(err)
	}

	var got map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["total"] != 3 {
		t.Errorf("total = %d, want 3", got["total"])
	}
}

func TestPrinter_PrintResultTextModeIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := New(WithOutput(&buf), WithNoColor(true))

	if err := p.PrintResult(map[string]int{"total": 3}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("PrintResult wrote in text mode: %q", buf.String())
	}
}
