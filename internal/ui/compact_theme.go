package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the light variant
var (
	colorMainTheme      = color.RGBA{R: 0x9E, G: 0xCF, B: 0xF5, A: 0xFF}
	colorTextBox        = color.RGBA{R: 0xD7, G: 0xE7, B: 0xF3, A: 0xFF}
	colorButton         = color.RGBA{R: 0xE4, G: 0xD8, B: 0xD0, A: 0xFF}
	colorButtonSelected = color.RGBA{R: 0x57, G: 0xA4, B: 0xEC, A: 0xFF}
	colorButtonHover    = color.RGBA{R: 0x45, G: 0x68, B: 0x82, A: 0x40}
	colorText           = color.RGBA{R: 0x07, G: 0x1D, B: 0x2C, A: 0xFF}
)

// CompactTheme is a light blue theme with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors; the dark variant keeps Fyne defaults except for accents
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return colorButtonSelected
	}

	if variant == theme.VariantDark {
		return theme.DefaultTheme().Color(name, variant)
	}

	switch name {
	case theme.ColorNameBackground:
		return colorMainTheme
	case theme.ColorNameInputBackground:
		return colorTextBox
	case theme.ColorNameButton:
		return colorButton
	case theme.ColorNameHover:
		return colorButtonHover
	case theme.ColorNameForeground:
		return colorText
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}
	return theme.DefaultTheme().Size(name)
}
