// Package notification posts system notifications through the Fyne app.
package notification

import (
	"context"
	"encoding/json"
	"errors"

	"fyne.io/fyne/v2"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "notification"

var ErrEmptyTitle = errors.New("notification title is empty")

// Permission states reported to the frontend.
const (
	PermissionGranted = "granted"
)

type notifyArgs struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Plugin implements plugin.Plugin.
type Plugin struct {
	app fyne.App
}

// New returns the notification plugin.
func New() *Plugin { return &Plugin{} }

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	p.app = ctx.App
	for cmd, h := range map[string]command.Handler{
		"notify":                p.notify,
		"is_permission_granted": p.isPermissionGranted,
		"request_permission":    p.requestPermission,
	} {
		if err := ctx.Register(Name, cmd, h); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plugin) notify(_ context.Context, args json.RawMessage) (any, error) {
	var in notifyArgs
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, ErrEmptyTitle
	}
	p.app.SendNotification(fyne.NewNotification(in.Title, in.Body))
	return nil, nil
}

// Fyne exposes no permission API; delivery is left to the platform.
func (p *Plugin) isPermissionGranted(context.Context, json.RawMessage) (any, error) {
	return true, nil
}

func (p *Plugin) requestPermission(context.Context, json.RawMessage) (any, error) {
	return PermissionGranted, nil
}
