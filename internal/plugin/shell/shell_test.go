package shell

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/plugin"
)

func TestOpenPassesURLToPlatform(t *testing.T) {
	var opened []string
	commands := command.NewRegistry()
	ctx := &plugin.Context{App: test.NewApp(), Commands: commands}
	p := New(func(u *url.URL) error {
		opened = append(opened, u.String())
		return nil
	})
	if err := plugin.NewRegistry().Install(ctx, p); err != nil {
		t.Fatalf("Install: %v", err)
	}

	args := json.RawMessage(`{"path":"https://github.com/andeya/squri"}`)
	if _, err := commands.Invoke(context.Background(), "plugin:shell|open", args); err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(opened) != 1 || opened[0] != "https://github.com/andeya/squri" {
		t.Errorf("unexpected opened URLs %v", opened)
	}
}

func TestOpenRejectedSchemeNeverReachesPlatform(t *testing.T) {
	called := false
	commands := command.NewRegistry()
	ctx := &plugin.Context{App: test.NewApp(), Commands: commands}
	p := New(func(*url.URL) error {
		called = true
		return nil
	})
	if err := plugin.NewRegistry().Install(ctx, p); err != nil {
		t.Fatalf("Install: %v", err)
	}

	args := json.RawMessage(`{"path":"file:///bin/sh"}`)
	if _, err := commands.Invoke(context.Background(), "plugin:shell|open", args); !errors.Is(err, ErrScheme) {
		t.Errorf("expected ErrScheme, got %v", err)
	}
	if called {
		t.Error("opener must not be called for rejected URLs")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"https://example.com", true},
		{"HTTP://example.com", true},
		{"mailto:someone@example.com", true},
		{"  https://example.com/path  ", true},
		{"javascript:alert(1)", false},
		{"file:///etc/hosts", false},
		{"/usr/bin/env", false},
		{"", false},
	}
	for _, tt := range tests {
		_, err := Validate(tt.raw)
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%q) error = %v, expected ok=%v", tt.raw, err, tt.ok)
		}
	}
}

type fakeFiles struct {
	opened, revealed []string
}

func (f *fakeFiles) Open(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

func (f *fakeFiles) Reveal(path string) error {
	f.revealed = append(f.revealed, path)
	return nil
}

func TestOpenPathAndReveal(t *testing.T) {
	files := &fakeFiles{}
	commands := command.NewRegistry()
	ctx := &plugin.Context{App: test.NewApp(), Commands: commands}
	p := New(func(*url.URL) error { return nil }).WithFiles(files)
	if err := plugin.NewRegistry().Install(ctx, p); err != nil {
		t.Fatalf("Install: %v", err)
	}

	args := json.RawMessage(`{"path":"/home/user/report.pdf"}`)
	if _, err := commands.Invoke(context.Background(), "plugin:shell|open_path", args); err != nil {
		t.Fatalf("open_path: %v", err)
	}
	if _, err := commands.Invoke(context.Background(), "plugin:shell|reveal", args); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if len(files.opened) != 1 || files.opened[0] != "/home/user/report.pdf" {
		t.Errorf("opened %v", files.opened)
	}
	if len(files.revealed) != 1 || files.revealed[0] != "/home/user/report.pdf" {
		t.Errorf("revealed %v", files.revealed)
	}

	if _, err := commands.Invoke(context.Background(), "plugin:shell|reveal", json.RawMessage(`{}`)); !errors.Is(err, command.ErrInvalidArgs) {
		t.Errorf("expected ErrInvalidArgs for empty path, got %v", err)
	}
}
