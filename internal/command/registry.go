package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andeya/squri/internal/logger"
)

var (
	ErrEmptyName        = errors.New("command name is empty")
	ErrDuplicateCommand = errors.New("command already registered")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArgs      = errors.New("invalid command arguments")
)

// Observer is told about every finished invocation. err is nil on success.
type Observer interface {
	ObserveCommand(name string, took time.Duration, err error)
}

// Registry maps command names to handlers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	observer Observer
	log      zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		log:      logger.For("command"),
	}
}

// Register binds h to name.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return ErrEmptyName
	}
	if h == nil {
		return fmt.Errorf("register %s: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.handlers[name] = h
	return nil
}

// SetObserver installs o for all later invocations. A nil o removes it.
func (r *Registry) SetObserver(o Observer) {
	r.mu.Lock()
	r.observer = o
	r.mu.Unlock()
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the command called name and returns its JSON-encoded result.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	observer := r.observer
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	requestID := newRequestID()
	started := time.Now()

	result, err := h(ctx, args)
	if observer != nil {
		observer.ObserveCommand(name, time.Since(started), err)
	}
	if err != nil {
		r.log.Debug().
			Str("command", name).
			Str("request_id", requestID).
			Err(err).
			Msg("command failed")
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%s: encode result: %w", name, err)
	}

	r.log.Debug().
		Str("command", name).
		Str("request_id", requestID).
		Dur("took", time.Since(started)).
		Msg("command served")
	return out, nil
}

// DecodeArgs unmarshals raw command arguments into v. Empty arguments leave v
// untouched.
func DecodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
