// Package plugin defines how platform capabilities are attached to the shell.
// A plugin exposes its functionality as commands named
// "plugin:<name>|<command>" on the shared command registry.
package plugin

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/logger"
)

var (
	ErrDuplicatePlugin = errors.New("plugin already installed")
	ErrNoWindow        = errors.New("main window is not available")
)

// Plugin is implemented by every platform capability.
type Plugin interface {
	Name() string
	Init(ctx *Context) error
}

// Emitter sends events to the frontend.
type Emitter interface {
	Emit(name string, payload any) error
}

// Context is handed to plugins during Init.
type Context struct {
	App      fyne.App
	Commands command.Registrar
	Events   Emitter
	// MainWindow returns the primary window, or nil before it exists.
	MainWindow func() fyne.Window
}

// Window returns the primary window or ErrNoWindow.
func (c *Context) Window() (fyne.Window, error) {
	if c.MainWindow == nil {
		return nil, ErrNoWindow
	}
	w := c.MainWindow()
	if w == nil {
		return nil, ErrNoWindow
	}
	return w, nil
}

// Register exposes h as command cmd of plugin p.
func (c *Context) Register(p, cmd string, h command.Handler) error {
	return c.Commands.Register(CommandName(p, cmd), h)
}

// CommandName returns the namespaced command name of a plugin command.
func CommandName(p, cmd string) string {
	return "plugin:" + p + "|" + cmd
}

// EventName returns the namespaced name of a plugin event.
func EventName(p, event string) string {
	return "plugin:" + p + "|" + event
}

// Registry tracks installed plugins.
type Registry struct {
	mu        sync.Mutex
	installed []string
	log       zerolog.Logger
}

// NewRegistry returns an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{log: logger.For("plugin")}
}

// Install initialises plugins in order. The first failure aborts the install
// and is returned wrapped with the plugin name.
func (r *Registry) Install(ctx *Context, plugins ...Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range plugins {
		name := p.Name()
		for _, existing := range r.installed {
			if existing == name {
				return fmt.Errorf("%w: %s", ErrDuplicatePlugin, name)
			}
		}
		if err := p.Init(ctx); err != nil {
			return fmt.Errorf("init plugin %s: %w", name, err)
		}
		r.installed = append(r.installed, name)
		r.log.Info().Str("plugin", name).Msg("plugin installed")
	}
	return nil
}

// Installed returns the names of installed plugins in install order.
func (r *Registry) Installed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.installed))
	copy(out, r.installed)
	return out
}
