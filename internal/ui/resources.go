package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed icon.svg
var iconSVG []byte

// AppIcon is the application and window icon.
var AppIcon fyne.Resource = fyne.NewStaticResource("squri.svg", iconSVG)
