package config

import (
	"fyne.io/fyne/v2"
)

// ThemeMode selects the colour variant of the UI.
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyThemeMode       = "theme_mode"
	KeyLastRoute       = "last_route"
	KeyProfileUsername = "profile_username"
	KeyProfileEmail    = "profile_email"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultThemeMode = ThemeSystem
	DefaultRoute     = "home"
	DefaultLanguage  = "system"
	GuestUsername    = "Guest"
)

// Profile is the locally stored user profile.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThemeMode returns the configured theme mode
func (s *Settings) GetThemeMode() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyThemeMode))
	switch mode {
	case ThemeSystem, ThemeLight, ThemeDark:
		return mode
	default:
		return DefaultThemeMode
	}
}

// SetThemeMode sets the theme mode; unknown values fall back to the default.
func (s *Settings) SetThemeMode(mode ThemeMode) {
	switch mode {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		mode = DefaultThemeMode
	}
	s.app.Preferences().SetString(KeyThemeMode, string(mode))
}

// GetThemeModeOptions returns available theme modes
func (s *Settings) GetThemeModeOptions() []ThemeMode {
	return []ThemeMode{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLastRoute returns the route shown when the app was last closed
func (s *Settings) GetLastRoute() string {
	return s.app.Preferences().StringWithFallback(KeyLastRoute, DefaultRoute)
}

// SetLastRoute remembers the current route
func (s *Settings) SetLastRoute(route string) {
	if route == "" {
		route = DefaultRoute
	}
	s.app.Preferences().SetString(KeyLastRoute, route)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetProfile returns the stored profile
func (s *Settings) GetProfile() Profile {
	prefs := s.app.Preferences()
	return Profile{
		Username: prefs.String(KeyProfileUsername),
		Email:    prefs.String(KeyProfileEmail),
	}
}

// SetProfile stores the profile
func (s *Settings) SetProfile(p Profile) {
	prefs := s.app.Preferences()
	prefs.SetString(KeyProfileUsername, p.Username)
	prefs.SetString(KeyProfileEmail, p.Email)
}

// ClearProfile removes the stored profile
func (s *Settings) ClearProfile() {
	prefs := s.app.Preferences()
	prefs.RemoveValue(KeyProfileUsername)
	prefs.RemoveValue(KeyProfileEmail)
}

// DisplayName returns the profile username or the guest placeholder
func (p Profile) DisplayName() string {
	if p.Username == "" {
		return GuestUsername
	}
	return p.Username
}

// IsSignedIn reports whether a username is stored
func (p Profile) IsSignedIn() bool {
	return p.Username != ""
}
