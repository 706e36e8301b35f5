package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Adaptive picks layouts for desktop or mobile devices.
type Adaptive struct {
	mobile bool
}

// NewAdaptive inspects the device of app.
func NewAdaptive(app fyne.App) *Adaptive {
	return &Adaptive{mobile: app.Driver().Device().IsMobile()}
}

// IsMobile reports whether the app runs on a phone or tablet.
func (a *Adaptive) IsMobile() bool { return a.mobile }

// Frame places the navigation at the left on desktop and as a bottom bar on
// mobile, around the page body.
func (a *Adaptive) Frame(nav []*widget.Button, top, body fyne.CanvasObject) *fyne.Container {
	objects := make([]fyne.CanvasObject, len(nav))
	for i, b := range nav {
		objects[i] = b
	}

	if a.mobile {
		bar := container.NewGridWithColumns(len(objects), objects...)
		return container.NewBorder(top, bar, nil, nil, body)
	}

	side := container.NewVBox(objects...)
	return container.NewBorder(top, nil, container.NewPadded(side), nil, body)
}

// Button returns a button sized for touch on mobile.
func (a *Adaptive) Button(label string, onTapped func()) *widget.Button {
	btn := widget.NewButton(label, onTapped)
	if a.mobile {
		btn.Resize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	}
	return btn
}
