// Package osinfo is the "os" plugin: read-only facts about the host platform.
package osinfo

import (
	"context"
	"encoding/json"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"

	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "os"

// Info is returned by the "info" command.
type Info struct {
	Platform     string `json:"platform"`
	Arch         string `json:"arch"`
	Family       string `json:"family"`
	Locale       string `json:"locale"`
	Hostname     string `json:"hostname"`
	Mobile       bool   `json:"mobile"`
	ExeExtension string `json:"exe_extension"`
}

// Plugin implements plugin.Plugin.
type Plugin struct {
	app fyne.App
}

// New returns the os plugin.
func New() *Plugin { return &Plugin{} }

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	p.app = ctx.App
	if err := ctx.Register(Name, "info", p.info); err != nil {
		return err
	}
	return ctx.Register(Name, "platform", func(context.Context, json.RawMessage) (any, error) {
		return runtime.GOOS, nil
	})
}

func (p *Plugin) info(context.Context, json.RawMessage) (any, error) {
	return Collect(p.app), nil
}

// Collect gathers Info. A nil app reports a non-mobile device.
func Collect(app fyne.App) Info {
	info := Info{
		Platform:     runtime.GOOS,
		Arch:         runtime.GOARCH,
		Family:       Family(runtime.GOOS),
		Locale:       lang.SystemLocale().String(),
		ExeExtension: ExeExtension(runtime.GOOS),
	}
	if host, err := os.Hostname(); err == nil {
		info.Hostname = host
	}
	if app != nil && app.Driver() != nil {
		info.Mobile = app.Driver().Device().IsMobile()
	}
	return info
}

// Family groups platforms the way installers do.
func Family(goos string) string {
	if goos == "windows" {
		return "windows"
	}
	return "unix"
}

// ExeExtension is the executable suffix on goos, without the dot.
func ExeExtension(goos string) string {
	if goos == "windows" {
		return "exe"
	}
	return ""
}
