// Package host adapts the Fyne application to the menu dispatcher: it owns
// the window registry, forwards events to the bus and records the exit code.
package host

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/logger"
	"github.com/andeya/squri/internal/menu"
)

var (
	ErrDuplicateWindow = errors.New("window label already registered")
	ErrNoContent       = errors.New("window has no content factory")
)

// Emitter is where menu events go.
type Emitter interface {
	Emit(name string, payload any) error
}

// Host implements menu.Handle for a running Fyne app.
type Host struct {
	app    fyne.App
	events Emitter
	quit   func()

	mu       sync.Mutex
	windows  map[string]*Window
	exitCode int

	log zerolog.Logger
}

// New returns a host for app that emits through events.
func New(app fyne.App, events Emitter) *Host {
	return &Host{
		app:     app,
		events:  events,
		quit:    app.Quit,
		windows: make(map[string]*Window),
		log:     logger.For("host"),
	}
}

// Window is a registered top-level window.
type Window struct {
	label   string
	win     fyne.Window
	content func() fyne.CanvasObject
}

// Label returns the registry label.
func (w *Window) Label() string { return w.label }

// Fyne returns the underlying window.
func (w *Window) Fyne() fyne.Window { return w.win }

// Reload rebuilds the window content from its factory.
func (w *Window) Reload() error {
	if w.content == nil {
		return fmt.Errorf("%w: %s", ErrNoContent, w.label)
	}
	w.win.SetContent(w.content())
	return nil
}

// Register adds win under label and sets its initial content. The entry is
// removed again when the window closes.
func (h *Host) Register(label string, win fyne.Window, content func() fyne.CanvasObject) (*Window, error) {
	h.mu.Lock()
	if _, exists := h.windows[label]; exists {
		h.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateWindow, label)
	}
	w := &Window{label: label, win: win, content: content}
	h.windows[label] = w
	h.mu.Unlock()

	win.SetOnClosed(func() {
		h.mu.Lock()
		if h.windows[label] == w {
			delete(h.windows, label)
		}
		h.mu.Unlock()
	})

	if content != nil {
		win.SetContent(content())
	}
	return w, nil
}

// Lookup returns the Fyne window registered under label, or nil.
func (h *Host) Lookup(label string) fyne.Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	if w, ok := h.windows[label]; ok {
		return w.win
	}
	return nil
}

// Emit implements menu.Handle.
func (h *Host) Emit(name string, payload any) error {
	return h.events.Emit(name, payload)
}

// Exit implements menu.Handle. The code is kept for ExitCode and the Fyne
// event loop is asked to stop.
func (h *Host) Exit(code int) {
	h.mu.Lock()
	h.exitCode = code
	h.mu.Unlock()

	h.log.Info().Int("code", code).Msg("exit requested")
	h.quit()
}

// ExitCode is the code passed to the last Exit, or 0.
func (h *Host) ExitCode() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode
}

// FindWindow implements menu.Handle.
func (h *Host) FindWindow(label string) (menu.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}
