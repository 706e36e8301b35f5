package menu

import (
	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/logger"
)

// Events emitted to the frontend.
const (
	EventNew            = "menu-new"
	EventOpen           = "menu-open"
	EventSave           = "menu-save"
	EventNavigate       = "menu-navigate"
	EventToggleTheme    = "menu-toggle-theme"
	EventToggleDevTools = "menu-toggle-devtools"
	EventAboutApp       = "menu-about-app"
	EventDocumentation  = "menu-documentation"
)

// Dispatcher maps an activated menu item to its single effect.
type Dispatcher struct {
	handle Handle
	log    zerolog.Logger
}

// NewDispatcher returns a Dispatcher acting through h.
func NewDispatcher(h Handle) *Dispatcher {
	return &Dispatcher{
		handle: h,
		log:    logger.For("menu"),
	}
}

// Dispatch performs the effect bound to id. It runs on the UI thread and
// never blocks; emission and window failures are dropped.
func (d *Dispatcher) Dispatch(id ID) {
	switch id {
	case IDQuit:
		d.log.Info().Msg("quit requested from menu")
		d.handle.Exit(0)
	case IDNew:
		d.emit(EventNew, nil)
	case IDOpen:
		d.emit(EventOpen, nil)
	case IDSave:
		d.emit(EventSave, nil)
	case IDHome, IDAbout, IDSettings, IDProfile:
		d.emit(EventNavigate, id.String())
	case IDToggleTheme:
		d.emit(EventToggleTheme, nil)
	case IDReload:
		d.reload()
	case IDToggleDevTools:
		d.emit(EventToggleDevTools, nil)
	case IDAboutApp:
		d.emit(EventAboutApp, nil)
	case IDDocumentation:
		d.emit(EventDocumentation, nil)
	default:
		// Edit-group items are handled natively by the host and never carry
		// an id of ours; anything else reaching here is ignored.
		d.log.Debug().Str("id", id.String()).Msg("no handler for menu item")
	}
}

func (d *Dispatcher) emit(name string, payload any) {
	if err := d.handle.Emit(name, payload); err != nil {
		d.log.Debug().Err(err).Str("event", name).Msg("menu event dropped")
	}
}

func (d *Dispatcher) reload() {
	w, ok := d.handle.FindWindow(MainWindow)
	if !ok {
		d.log.Debug().Msg("reload: main window not found")
		return
	}
	if err := w.Reload(); err != nil {
		d.log.Debug().Err(err).Msg("reload failed")
	}
}
