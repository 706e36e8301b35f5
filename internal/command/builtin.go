package command

import (
	"context"
	"encoding/json"
	"fmt"
)

// Built-in command names.
const (
	CmdGreet      = "greet"
	CmdGetAppInfo = "get_app_info"
)

type greetArgs struct {
	Name string `json:"name"`
}

// RegisterBuiltins exposes Greet and GetAppInfo on r.
func RegisterBuiltins(r Registrar) error {
	builtins := []struct {
		name string
		h    Handler
	}{
		{CmdGreet, handleGreet},
		{CmdGetAppInfo, handleGetAppInfo},
	}
	for _, b := range builtins {
		if err := r.Register(b.name, b.h); err != nil {
			return fmt.Errorf("register builtins: %w", err)
		}
	}
	return nil
}

func handleGreet(_ context.Context, args json.RawMessage) (any, error) {
	var in greetArgs
	if err := DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	return Greet(in.Name), nil
}

func handleGetAppInfo(_ context.Context, _ json.RawMessage) (any, error) {
	return GetAppInfo(), nil
}
