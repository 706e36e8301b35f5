package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/config"
	"github.com/andeya/squri/internal/event"
	"github.com/andeya/squri/internal/logger"
	"github.com/andeya/squri/internal/menu"
	"github.com/andeya/squri/internal/plugin"
	"github.com/andeya/squri/internal/plugin/dialogs"
	"github.com/andeya/squri/internal/plugin/shell"
)

// MetricsSource renders runtime counters for the developer tools panel.
type MetricsSource interface {
	Text() (string, error)
}

// EventSource is the subscribing side of the event bus.
type EventSource interface {
	Listen(name string, fn event.Listener) (unlisten func())
}

// Frontend is the UI hosted in the main window.
type Frontend struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	commands command.Invoker
	metrics  MetricsSource

	loc      *Localization
	router   *Router
	adaptive *Adaptive
	do       func(func())

	body        *fyne.Container
	noticeBox   *fyne.Container
	noticeLabel *widget.Label
	noticeSeq   uint64

	devtools     *fyne.Container
	devtoolsText *widget.Label
	devtoolsOn   bool

	// Page widgets, rebuilt on every render.
	greetName    *widget.Entry
	greetResult  *widget.Label
	aboutInfo    *widget.Label
	themeRadio   *widget.RadioGroup
	profileUser  *widget.Entry
	profileEmail *widget.Entry

	mu      sync.Mutex
	pending map[string]dialogs.Kind

	log zerolog.Logger
}

// New creates the frontend. metrics may be nil.
func New(app fyne.App, window fyne.Window, settings *config.Settings, commands command.Invoker, metrics MetricsSource) *Frontend {
	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	f := &Frontend{
		app:      app,
		window:   window,
		settings: settings,
		commands: commands,
		metrics:  metrics,
		loc:      loc,
		router:   NewRouter(settings.GetLastRoute()),
		adaptive: NewAdaptive(app),
		do:       fyne.Do,
		pending:  make(map[string]dialogs.Kind),
		log:      logger.For("ui"),
	}
	f.router.OnChange(f.onRouteChange)
	return f
}

// Router exposes the page router.
func (f *Frontend) Router() *Router { return f.router }

// Content builds the whole window content for the current route. It is the
// content factory of the main window, so Reload calls it again.
func (f *Frontend) Content() fyne.CanvasObject {
	f.noticeLabel = widget.NewLabel("")
	f.noticeLabel.Wrapping = fyne.TextWrapWord
	f.noticeBox = container.NewPadded(f.noticeLabel)
	f.noticeBox.Hide()

	f.devtoolsText = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	f.devtools = container.NewBorder(
		widget.NewLabelWithStyle(f.loc.GetText(KeyDevTools), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(f.devtoolsText),
	)
	if f.devtoolsOn {
		f.refreshDevTools()
	} else {
		f.devtools.Hide()
	}

	nav := make([]*widget.Button, 0, len(Routes()))
	for _, r := range Routes() {
		route := r
		nav = append(nav, f.adaptive.Button(f.loc.GetText(route.TitleKey()), func() {
			f.router.Navigate(string(route))
		}))
	}

	f.body = container.NewStack()
	f.render(f.router.Current())

	frame := f.adaptive.Frame(nav, f.noticeBox, f.body)
	return container.NewBorder(nil, f.devtools, nil, nil, frame)
}

// Bind subscribes the frontend to menu and dialog events. Handlers run on the
// UI thread. The returned function removes every subscription.
func (f *Frontend) Bind(events EventSource) (unbind func()) {
	handlers := map[string]func(event.Event){
		menu.EventNavigate:       f.onNavigate,
		menu.EventToggleTheme:    func(event.Event) { f.ToggleTheme() },
		menu.EventNew:            func(event.Event) { f.Notice(f.loc.GetText(KeyNewFile)) },
		menu.EventOpen:           func(event.Event) { f.requestDialog(dialogs.KindOpen) },
		menu.EventSave:           func(event.Event) { f.requestDialog(dialogs.KindSave) },
		menu.EventAboutApp:       func(event.Event) { f.router.Navigate(string(RouteAbout)) },
		menu.EventDocumentation:  func(event.Event) { f.openDocumentation() },
		menu.EventToggleDevTools: func(event.Event) { f.ToggleDevTools() },
		dialogs.ResultEvent:      f.onDialogResult,
	}

	unlisten := make([]func(), 0, len(handlers))
	for name, h := range handlers {
		handle := h
		unlisten = append(unlisten, events.Listen(name, func(ev event.Event) {
			f.do(func() { handle(ev) })
		}))
	}
	return func() {
		for _, u := range unlisten {
			u()
		}
	}
}

// ApplyTheme installs the theme for the persisted mode.
func (f *Frontend) ApplyTheme() {
	f.app.Settings().SetTheme(NewAppTheme(f.settings.GetThemeMode()))
}

// ToggleTheme switches between light and dark and persists the choice.
func (f *Frontend) ToggleTheme() {
	mode := ToggledMode(f.settings.GetThemeMode(), f.app.Settings().ThemeVariant())
	f.settings.SetThemeMode(mode)
	f.ApplyTheme()
	if f.themeRadio != nil {
		f.themeRadio.SetSelected(f.themeLabel(mode))
	}
	f.Notice(fmt.Sprintf(f.loc.GetText(KeyThemeSwitched), f.themeLabel(mode)))
}

// ToggleDevTools shows or hides the runtime metrics panel.
func (f *Frontend) ToggleDevTools() {
	f.devtoolsOn = !f.devtoolsOn
	if f.devtools == nil {
		return
	}
	if f.devtoolsOn {
		f.refreshDevTools()
		f.devtools.Show()
		f.Notice(f.loc.GetText(KeyDevToolsHint))
	} else {
		f.devtools.Hide()
	}
}

func (f *Frontend) refreshDevTools() {
	if f.metrics == nil {
		f.devtoolsText.SetText(DashPlaceholder)
		return
	}
	text, err := f.metrics.Text()
	if err != nil {
		f.log.Warn().Err(err).Msg("render metrics")
	}
	f.devtoolsText.SetText(text)
}

// Notice shows msg in the bar above the page until NoticeAutoHide passes or
// another notice replaces it.
func (f *Frontend) Notice(msg string) {
	f.log.Debug().Str("notice", msg).Msg("notice")
	if f.noticeLabel == nil {
		return
	}
	f.noticeSeq++
	seq := f.noticeSeq
	f.noticeLabel.SetText(msg)
	f.noticeBox.Show()

	time.AfterFunc(NoticeAutoHide, func() {
		f.do(func() {
			if f.noticeSeq == seq {
				f.noticeBox.Hide()
			}
		})
	})
}

func (f *Frontend) onRouteChange(route Route) {
	f.settings.SetLastRoute(string(route))
	if f.body != nil {
		f.render(route)
	}
}

func (f *Frontend) render(route Route) {
	f.body.Objects = []fyne.CanvasObject{f.page(route)}
	f.body.Refresh()
}

func (f *Frontend) onNavigate(ev event.Event) {
	var route string
	if err := ev.Decode(&route); err != nil {
		f.log.Warn().Err(err).Msg("decode navigate payload")
		return
	}
	if !f.router.Navigate(route) {
		f.Notice(fmt.Sprintf(f.loc.GetText(KeyUnknownRoute), route))
	}
}

func (f *Frontend) invoke(name string, args any) (json.RawMessage, error) {
	var raw json.RawMessage
	if args != nil {
		b, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		raw = b
	}

	ctx, cancel := context.WithTimeout(context.Background(), InvokeTimeout)
	defer cancel()
	out, err := f.commands.Invoke(ctx, name, raw)
	if err != nil {
		f.log.Warn().Err(err).Str("command", name).Msg("invoke failed")
		f.Notice(fmt.Sprintf(f.loc.GetText(KeyCommandFailed), err))
	}
	return out, err
}

func (f *Frontend) requestDialog(kind dialogs.Kind) {
	out, err := f.invoke(plugin.CommandName(dialogs.Name, string(kind)), nil)
	if err != nil {
		return
	}
	var ticket dialogs.Ticket
	if err := json.Unmarshal(out, &ticket); err != nil {
		f.log.Warn().Err(err).Msg("decode dialog ticket")
		return
	}
	f.mu.Lock()
	f.pending[ticket.ID] = kind
	f.mu.Unlock()
}

func (f *Frontend) onDialogResult(ev event.Event) {
	var res dialogs.Result
	if err := ev.Decode(&res); err != nil {
		f.log.Warn().Err(err).Msg("decode dialog result")
		return
	}

	f.mu.Lock()
	kind, ours := f.pending[res.ID]
	delete(f.pending, res.ID)
	f.mu.Unlock()
	if !ours || res.Canceled || res.Path == "" {
		return
	}

	switch kind {
	case dialogs.KindOpen:
		f.Notice(fmt.Sprintf(f.loc.GetText(KeyOpened), res.Path))
	case dialogs.KindSave:
		f.Notice(fmt.Sprintf(f.loc.GetText(KeySavedTo), res.Path))
	}
}

func (f *Frontend) openDocumentation() {
	_, _ = f.invoke(plugin.CommandName(shell.Name, "open"), map[string]string{"path": DocumentationURL})
}
