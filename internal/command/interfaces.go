package command

import (
	"context"
	"encoding/json"
)

// Handler serves one named command. args is the raw JSON argument object and
// may be empty; the returned value is JSON-encoded for the caller.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Invoker is what the frontend needs to call commands.
type Invoker interface {
	Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error)
}

// Registrar is what plugins need to expose commands.
type Registrar interface {
	Register(name string, h Handler) error
}
