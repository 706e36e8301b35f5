package menu

// MainWindow is the label of the primary application window.
const MainWindow = "main"

// Handle is the capability set the Dispatcher needs from the running
// application.
type Handle interface {
	// Emit sends a named event to the frontend. A nil payload means none.
	Emit(name string, payload any) error
	// Exit terminates the application with the given code.
	Exit(code int)
	// FindWindow looks a window up by label.
	FindWindow(label string) (Window, bool)
}

// Window is the part of a host window the Dispatcher can act on.
type Window interface {
	// Reload rebuilds the window content in place.
	Reload() error
}
