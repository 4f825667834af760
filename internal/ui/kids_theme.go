package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Sizes only the kids theme defines. Other themes fall back to the layout
// constants through kidsSize.
const (
	SizeNameAreaCell   fyne.ThemeSizeName = "colorandlearn-area-cell"
	SizeNameSwatch     fyne.ThemeSizeName = "colorandlearn-swatch"
	SizeNameAreaRadius fyne.ThemeSizeName = "colorandlearn-area-radius"
)

// KidsTheme is a soft, high-contrast theme with larger touch targets
type KidsTheme struct{}

// NewKidsTheme creates a new kids theme
func NewKidsTheme() fyne.Theme {
	return &KidsTheme{}
}

// Color returns theme colors
func (t *KidsTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 76, G: 175, B: 80, A: 255} // Green for earned rewards
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Star yellow
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 107, B: 157, A: 255} // Pink
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 38, G: 28, B: 44, A: 255}
		}
		return color.RGBA{R: 255, G: 240, B: 245, A: 255} // Lavender blush
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 74, G: 74, B: 74, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *KidsTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *KidsTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, enlarged for small fingers
func (t *KidsTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Up from default 4
	case theme.SizeNameInnerPadding:
		return 12 // Up from default 8
	case theme.SizeNameText:
		return 16 // Up from default 14
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 19
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameInlineIcon:
		return 24 // Up from default 20
	case theme.SizeNameLineSpacing:
		return 6
	case theme.SizeNameScrollBar:
		return 20 // Easier to grab
	case theme.SizeNameScrollBarSmall:
		return 6
	case theme.SizeNameSeparatorThickness:
		return 2
	case SizeNameAreaCell:
		return 64
	case SizeNameSwatch:
		return 48
	case SizeNameAreaRadius:
		return 12
	}

	return theme.DefaultTheme().Size(name)
}

// kidsSize reads one of the kids theme sizes, or fallback under any other theme
func kidsSize(name fyne.ThemeSizeName, fallback float32) float32 {
	if t, ok := theme.Current().(*KidsTheme); ok {
		return t.Size(name)
	}
	return fallback
}
