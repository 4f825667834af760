package coloring

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a palette entry in #RRGGBB form
type Color string

// Palette is the fixed list of colors a child can pick from
var Palette = []Color{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57",
	"#FF9FF3", "#54A0FF", "#5F27CD", "#00D2D3", "#FF9F43",
	"#00B894", "#FDCB6E", "#6C5CE7", "#A29BFE", "#FD79A8",
	"#E17055", "#81ECEC", "#74B9FF", "#C44569", "#F8B500",
	"#FF3838", "#FF6348", "#FF4757", "#FF6B9D", "#3742FA",
	"#2F3542", "#57606F", "#A4B0BE", "#747D8C",
}

// PenSize is a pen thickness option
type PenSize struct {
	Size  int
	Label string
	Icon  string
}

// PenSizes lists the selectable pen thicknesses
var PenSizes = []PenSize{
	{Size: 1, Label: "Thin", Icon: "✏️"},
	{Size: 2, Label: "Normal", Icon: "🖊️"},
	{Size: 3, Label: "Thick", Icon: "🖍️"},
	{Size: 4, Label: "Big", Icon: "🖌️"},
}

// Selection defaults for a fresh session
const (
	DefaultColor   Color = "#FF6B6B"
	DefaultPenSize       = 2
)

// InPalette reports whether c is one of the palette colors
func InPalette(c Color) bool {
	for _, p := range Palette {
		if strings.EqualFold(string(p), string(c)) {
			return true
		}
	}
	return false
}

// LookupPenSize returns the pen size entry for size
func LookupPenSize(size int) (PenSize, bool) {
	for _, p := range PenSizes {
		if p.Size == size {
			return p, true
		}
	}
	return PenSize{}, false
}

// RGBA converts the hex color to an image color
func (c Color) RGBA() (color.NRGBA, error) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", string(c))
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", string(c), err)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// String returns the hex form
func (c Color) String() string {
	return string(c)
}
