// Package applog is the "log" plugin. It forwards frontend log lines into the
// process logger under the "frontend" component.
package applog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/logger"
	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "log"

var ErrLevel = errors.New("unknown log level")

type entry struct {
	Level   string            `json:"level"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Plugin implements plugin.Plugin.
type Plugin struct {
	log *zerolog.Logger
}

// New returns the log plugin. A nil logger uses the "frontend" component
// logger at Init.
func New(log *zerolog.Logger) *Plugin {
	return &Plugin{log: log}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	if p.log == nil {
		l := logger.For("frontend")
		p.log = &l
	}
	return ctx.Register(Name, "log", p.write)
}

func (p *Plugin) write(_ context.Context, args json.RawMessage) (any, error) {
	var in entry
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	level, err := ParseLevel(in.Level)
	if err != nil {
		return nil, err
	}

	ev := p.log.WithLevel(level)
	for k, v := range in.Fields {
		ev = ev.Str(k, v)
	}
	ev.Msg(in.Message)
	return nil, nil
}

// ParseLevel accepts zerolog level names plus "warning". Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "fatal", "panic", "disabled":
		// The frontend must not be able to terminate or silence the process.
		return zerolog.NoLevel, fmt.Errorf("%w: %s", ErrLevel, s)
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %s", ErrLevel, s)
	}
	return level, nil
}
