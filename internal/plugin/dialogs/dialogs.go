// Package dialogs is the dialog plugin. Native dialogs are asynchronous: a
// command returns a request id straight away and the outcome arrives later
// as a "plugin:dialog|result" event carrying the same id.
package dialogs

import (
	"context"
	"encoding/json"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/logger"
	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "dialog"

// ResultEvent is emitted when a dialog closes.
var ResultEvent = plugin.EventName(Name, "result")

// Kind identifies the dialog type.
type Kind string

const (
	KindMessage Kind = "message"
	KindAsk     Kind = "ask"
	KindOpen    Kind = "open"
	KindSave    Kind = "save"
)

type messageArgs struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Ticket is returned by every dialog command.
type Ticket struct {
	ID string `json:"id"`
}

// Result is the payload of ResultEvent.
type Result struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	Confirmed bool   `json:"confirmed,omitempty"`
	Path      string `json:"path,omitempty"`
	Canceled  bool   `json:"canceled"`
	Error     string `json:"error,omitempty"`
}

// Plugin implements plugin.Plugin.
type Plugin struct {
	ctx      *plugin.Context
	schedule func(func())
	log      zerolog.Logger
}

// New returns the dialog plugin.
func New() *Plugin {
	return &Plugin{schedule: fyne.Do}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	p.log = logger.For("dialog")

	handlers := []struct {
		kind Kind
		h    command.Handler
	}{
		{KindMessage, p.message},
		{KindAsk, p.ask},
		{KindOpen, p.open},
		{KindSave, p.save},
	}
	for _, entry := range handlers {
		if err := ctx.Register(Name, string(entry.kind), entry.h); err != nil {
			return err
		}
	}
	return nil
}

// start resolves the parent window and schedules show on the UI thread.
func (p *Plugin) start(show func(w fyne.Window, id string)) (any, error) {
	w, err := p.ctx.Window()
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	p.schedule(func() { show(w, id) })
	return Ticket{ID: id}, nil
}

func (p *Plugin) message(_ context.Context, args json.RawMessage) (any, error) {
	var in messageArgs
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	return p.start(func(w fyne.Window, id string) {
		d := dialog.NewInformation(in.Title, in.Message, w)
		d.SetOnClosed(func() {
			p.finish(Result{ID: id, Kind: KindMessage, Confirmed: true})
		})
		d.Show()
	})
}

func (p *Plugin) ask(_ context.Context, args json.RawMessage) (any, error) {
	var in messageArgs
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	return p.start(func(w fyne.Window, id string) {
		dialog.ShowConfirm(in.Title, in.Message, func(ok bool) {
			p.finish(Result{ID: id, Kind: KindAsk, Confirmed: ok, Canceled: !ok})
		}, w)
	})
}

func (p *Plugin) open(_ context.Context, _ json.RawMessage) (any, error) {
	return p.start(func(w fyne.Window, id string) {
		dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
			res := Result{ID: id, Kind: KindOpen}
			switch {
			case err != nil:
				res.Error = err.Error()
			case r == nil:
				res.Canceled = true
			default:
				res.Path = r.URI().Path()
				r.Close()
			}
			p.finish(res)
		}, w)
	})
}

func (p *Plugin) save(_ context.Context, _ json.RawMessage) (any, error) {
	return p.start(func(w fyne.Window, id string) {
		dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
			res := Result{ID: id, Kind: KindSave}
			switch {
			case err != nil:
				res.Error = err.Error()
			case wc == nil:
				res.Canceled = true
			default:
				res.Path = wc.URI().Path()
				wc.Close()
			}
			p.finish(res)
		}, w)
	})
}

func (p *Plugin) finish(res Result) {
	if p.ctx.Events == nil {
		return
	}
	if err := p.ctx.Events.Emit(ResultEvent, res); err != nil {
		p.log.Debug().Err(err).Str("id", res.ID).Str("kind", string(res.Kind)).Msg("dialog result dropped")
	}
}
