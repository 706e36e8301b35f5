package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/andeya/squri/internal/config"
)

// AppTheme is a compact theme that can pin the light or dark variant.
type AppTheme struct {
	mode config.ThemeMode
}

// NewAppTheme returns the theme for mode. ThemeSystem follows the platform.
func NewAppTheme(mode config.ThemeMode) *AppTheme {
	return &AppTheme{mode: mode}
}

// Mode reports the configured mode.
func (t *AppTheme) Mode() config.ThemeMode { return t.mode }

func (t *AppTheme) variant(v fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	default:
		return v
	}
}

func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.variant(variant)
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size shrinks paddings and text a notch below the default theme.
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}
	return theme.DefaultTheme().Size(name)
}

// ToggledMode flips between light and dark. From ThemeSystem it picks the
// opposite of the variant the platform currently shows.
func ToggledMode(current config.ThemeMode, system fyne.ThemeVariant) config.ThemeMode {
	switch current {
	case config.ThemeLight:
		return config.ThemeDark
	case config.ThemeDark:
		return config.ThemeLight
	}
	if system == theme.VariantDark {
		return config.ThemeLight
	}
	return config.ThemeDark
}
