// Package shell is the shell plugin. It opens URLs with the platform
// handler and hands local files to the desktop. Arbitrary process spawning
// is not exposed to the frontend.
package shell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/platform"
	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "shell"

var ErrScheme = errors.New("scheme not allowed")

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

type openArgs struct {
	Path string `json:"path"`
}

// Opener hands a URL to the platform.
type Opener func(*url.URL) error

// Files opens and reveals local paths.
type Files interface {
	Open(path string) error
	Reveal(path string) error
}

// Plugin implements plugin.Plugin.
type Plugin struct {
	open  Opener
	files Files
}

// New returns the shell plugin. A nil opener uses the Fyne app's OpenURL.
func New(open Opener) *Plugin {
	return &Plugin{open: open, files: platform.NewLauncher()}
}

// WithFiles replaces the desktop launcher used by open_path and reveal.
func (p *Plugin) WithFiles(f Files) *Plugin {
	p.files = f
	return p
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	if p.open == nil {
		p.open = ctx.App.OpenURL
	}
	if err := ctx.Register(Name, "open", p.openURL); err != nil {
		return err
	}
	if err := ctx.Register(Name, "open_path", p.pathHandler(p.files.Open)); err != nil {
		return err
	}
	return ctx.Register(Name, "reveal", p.pathHandler(p.files.Reveal))
}

func (p *Plugin) pathHandler(fn func(string) error) command.Handler {
	return func(_ context.Context, args json.RawMessage) (any, error) {
		var in openArgs
		if err := command.DecodeArgs(args, &in); err != nil {
			return nil, err
		}
		if in.Path == "" {
			return nil, fmt.Errorf("%w: path is required", command.ErrInvalidArgs)
		}
		if err := fn(in.Path); err != nil {
			return nil, fmt.Errorf("%s: %w", in.Path, err)
		}
		return nil, nil
	}
}

func (p *Plugin) openURL(_ context.Context, args json.RawMessage) (any, error) {
	var in openArgs
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}

	u, err := Validate(in.Path)
	if err != nil {
		return nil, err
	}
	if err := p.open(u); err != nil {
		return nil, fmt.Errorf("open %s: %w", u.Redacted(), err)
	}
	return nil, nil
}

// Validate parses raw and checks it against the allowed schemes.
func Validate(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", command.ErrInvalidArgs, err)
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return nil, fmt.Errorf("%w: %q", ErrScheme, raw)
	}
	return u, nil
}
