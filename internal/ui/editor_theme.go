package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Editor specific colors
const (
	ColorNameVideoTrack    fyne.ThemeColorName = "videoTrack"
	ColorNameSelectedTrack fyne.ThemeColorName = "selectedTrack"
	ColorNameClip          fyne.ThemeColorName = "clip"
	ColorNameMix           fyne.ThemeColorName = "mix"
	ColorNameGroupOverlay  fyne.ThemeColorName = "groupOverlay"
)

// EditorTheme defines a compact theme for the editor with reduced padding and timeline colors
type EditorTheme struct{}

// NewEditorTheme creates a new editor theme
func NewEditorTheme() fyne.Theme {
	return &EditorTheme{}
}

// Color returns theme colors
func (t *EditorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameVideoTrack:
		if variant == theme.VariantDark {
			return color.RGBA{R: 38, G: 38, B: 44, A: 255}
		}
		return color.RGBA{R: 232, G: 232, B: 240, A: 255}
	case ColorNameSelectedTrack:
		return color.RGBA{R: 25, G: 118, B: 210, A: 90}
	case ColorNameClip:
		return color.RGBA{R: 70, G: 130, B: 180, A: 255}
	case ColorNameMix:
		return color.RGBA{R: 255, G: 193, B: 7, A: 160} // Amber, like warnings
	case ColorNameGroupOverlay:
		return color.RGBA{R: 255, G: 255, B: 255, A: 40}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *EditorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *EditorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *EditorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}

// themeColor resolves name against the current application theme
func themeColor(name fyne.ThemeColorName) color.Color {
	if app := fyne.CurrentApp(); app != nil {
		return app.Settings().Theme().Color(name, app.Settings().ThemeVariant())
	}
	return NewEditorTheme().Color(name, theme.VariantDark)
}
