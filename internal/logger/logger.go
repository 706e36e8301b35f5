// Package logger configures the process-wide zerolog logger and hands out
// component-scoped children of it.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.Nop()
)

// Init installs a console logger writing to w. Components created before Init
// keep the no-op logger they were handed.
func Init(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}

	mu.Lock()
	root = zerolog.New(console).
		Level(defaultLevel).
		With().
		Timestamp().
		Logger()
	mu.Unlock()
}

// For returns a child logger tagged with the given component name.
func For(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", component).Logger()
}

// Level reports the level the root logger was built with.
func Level() zerolog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return root.GetLevel()
}

// Fatal logs err for component and exits the process with status 1.
func Fatal(component string, err error, msg string) {
	l := For(component)
	l.Fatal().Err(err).Msg(msg)
}
