package menu

// ID is the stable identifier of a custom menu item.
type ID string

const (
	IDNew            ID = "new"
	IDOpen           ID = "open"
	IDSave           ID = "save"
	IDQuit           ID = "quit"
	IDHome           ID = "home"
	IDAbout          ID = "about"
	IDSettings       ID = "settings"
	IDProfile        ID = "profile"
	IDToggleTheme    ID = "toggle_theme"
	IDReload         ID = "reload"
	IDToggleDevTools ID = "toggle_devtools"
	IDAboutApp       ID = "about_app"
	IDDocumentation  ID = "documentation"
)

// KnownIDs lists every identifier the Dispatcher has an effect for.
func KnownIDs() []ID {
	return []ID{
		IDNew, IDOpen, IDSave, IDQuit,
		IDHome, IDAbout, IDSettings, IDProfile,
		IDToggleTheme, IDReload, IDToggleDevTools,
		IDAboutApp, IDDocumentation,
	}
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// IsKnown reports whether id belongs to the closed set of dispatchable ids.
func (id ID) IsKnown() bool {
	for _, known := range KnownIDs() {
		if id == known {
			return true
		}
	}
	return false
}

// IsNavigation reports whether activating id navigates the frontend.
func (id ID) IsNavigation() bool {
	return id == IDHome || id == IDAbout || id == IDSettings || id == IDProfile
}
