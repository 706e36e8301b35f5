package ui

import "time"

// DocumentationURL is opened by the Help > Documentation menu item.
const DocumentationURL = "https://github.com/andeya/squri"

// Window and layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 600

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Notice bar behavior
const (
	NoticeAutoHide = 4 * time.Second
)

// Command calls made by the frontend
const (
	InvokeTimeout = 10 * time.Second
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)
