package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/config"
	"github.com/andeya/squri/internal/event"
	"github.com/andeya/squri/internal/host"
	"github.com/andeya/squri/internal/logger"
	"github.com/andeya/squri/internal/menu"
	"github.com/andeya/squri/internal/metric"
	"github.com/andeya/squri/internal/plugin"
	"github.com/andeya/squri/internal/plugin/applog"
	"github.com/andeya/squri/internal/plugin/dialogs"
	"github.com/andeya/squri/internal/plugin/fs"
	"github.com/andeya/squri/internal/plugin/httpclient"
	"github.com/andeya/squri/internal/plugin/notification"
	"github.com/andeya/squri/internal/plugin/osinfo"
	"github.com/andeya/squri/internal/plugin/shell"
	"github.com/andeya/squri/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = command.AppVersion

const (
	AppID = "com.andeya.squri"

	// MetricsAddrEnv, when set, serves /metrics on that address.
	MetricsAddrEnv = "SQURI_METRICS_ADDR"
)

func main() {
	logger.Init(os.Stderr)
	log := logger.For("main")
	log.Info().Str("version", version).Msg("Squri starting")

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIcon)
	settings := config.NewSettings(myApp)

	metrics := metric.New()
	bus := event.New(event.DefaultBuffer)
	bus.SetObserver(metrics)

	commands := command.NewRegistry()
	commands.SetObserver(metrics)
	if err := command.RegisterBuiltins(commands); err != nil {
		logger.Fatal("main", err, "register builtin commands")
	}

	h := host.New(myApp, bus)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", command.AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetMaster()

	pluginCtx := &plugin.Context{
		App:        myApp,
		Commands:   commands,
		Events:     bus,
		MainWindow: func() fyne.Window { return h.Lookup(menu.MainWindow) },
	}
	err := plugin.NewRegistry().Install(pluginCtx,
		fs.New(),
		httpclient.New(nil),
		shell.New(nil),
		dialogs.New(),
		osinfo.New(),
		notification.New(),
		applog.New(nil),
	)
	if err != nil {
		logger.Fatal("main", err, "install plugins")
	}

	frontend := ui.New(myApp, myWindow, settings, commands, metrics)
	frontend.ApplyTheme()
	if _, err := h.Register(menu.MainWindow, myWindow, frontend.Content); err != nil {
		logger.Fatal("main", err, "register main window")
	}
	unbind := frontend.Bind(bus)

	nodes, err := menu.Default(command.AppName)
	if err != nil {
		logger.Fatal("main", err, "build menu")
	}
	dispatcher := menu.NewDispatcher(h)
	mainMenu, err := h.MainMenu(nodes, func(id menu.ID) {
		metrics.ObserveMenu(id.String())
		dispatcher.Dispatch(id)
	})
	if err != nil {
		logger.Fatal("main", err, "render menu")
	}
	myWindow.SetMainMenu(mainMenu)

	ctx, cancel := context.WithCancel(context.Background())
	if addr := os.Getenv(MetricsAddrEnv); addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	myWindow.ShowAndRun()

	cancel()
	unbind()
	bus.Close()
	os.Exit(h.ExitCode())
}
