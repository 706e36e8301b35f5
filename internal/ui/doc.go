// Package ui is the frontend hosted in the main window. It renders the routed
// pages, reacts to menu events from the bus and talks to the native side only
// through named commands. All UI strings are localized via Localization.
package ui
