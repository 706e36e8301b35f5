// Package config persists user settings (theme, last route, language,
// profile) in the Fyne preferences store.
package config
