package coloring

import (
	"image/color"
	"testing"
)

func TestPalette_Unique(t *testing.T) {
	seen := map[Color]bool{}
	for _, c := range Palette {
		if seen[c] {
			t.Errorf("Duplicate palette color %s", c)
		}
		seen[c] = true
		if _, err := c.RGBA(); err != nil {
			t.Errorf("Palette color %s does not parse: %v", c, err)
		}
	}

	if !InPalette(DefaultColor) {
		t.Errorf("Default color %s must be in the palette", DefaultColor)
	}
}

func TestInPalette(t *testing.T) {
	tests := []struct {
		c        Color
		expected bool
	}{
		{"#FF6B6B", true},
		{"#ff6b6b", true},
		{"#000000", false},
		{"", false},
	}

	for _, test := range tests {
		if got := InPalette(test.c); got != test.expected {
			t.Errorf("InPalette(%q) = %v, expected %v", test.c, got, test.expected)
		}
	}
}

func TestColor_RGBA(t *testing.T) {
	got, err := Color("#FF6B9D").RGBA()
	if err != nil {
		t.Fatalf("RGBA() returned error: %v", err)
	}

	expected := color.NRGBA{R: 0xFF, G: 0x6B, B: 0x9D, A: 0xFF}
	if got != expected {
		t.Errorf("RGBA() = %v, expected %v", got, expected)
	}

	for _, bad := range []Color{"", "#FFF", "#GGGGGG", "FF6B9D00"} {
		if _, err := bad.RGBA(); err == nil {
			t.Errorf("RGBA() for %q should fail", bad)
		}
	}
}

func TestLookupPenSize(t *testing.T) {
	pen, ok := LookupPenSize(DefaultPenSize)
	if !ok || pen.Label != "Normal" {
		t.Errorf("LookupPenSize(%d) = %+v, %v", DefaultPenSize, pen, ok)
	}

	if _, ok := LookupPenSize(0); ok {
		t.Error("Pen size 0 should not exist")
	}
}
