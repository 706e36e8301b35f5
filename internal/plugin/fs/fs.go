// Package fs is the filesystem plugin. Paths must be absolute; all access
// goes through Fyne's storage repositories.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/andeya/squri/internal/command"
	"github.com/andeya/squri/internal/plugin"
)

// Name is the plugin namespace.
const Name = "fs"

// MaxReadSize bounds read_text_file.
const MaxReadSize = 16 << 20

var (
	ErrRelativePath = errors.New("path must be absolute")
	ErrTooLarge     = errors.New("file exceeds read limit")
)

type pathArgs struct {
	Path string `json:"path"`
}

type writeArgs struct {
	Path     string `json:"path"`
	Contents string `json:"contents"`
}

// DirEntry is one element of a read_dir result.
type DirEntry struct {
	Name        string `json:"name"`
	IsDirectory bool   `json:"is_directory"`
}

// Plugin implements plugin.Plugin.
type Plugin struct{}

// New returns the filesystem plugin.
func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	handlers := map[string]command.Handler{
		"read_text_file":  p.readTextFile,
		"write_text_file": p.writeTextFile,
		"exists":          p.exists,
		"read_dir":        p.readDir,
		"mkdir":           p.mkdir,
		"remove":          p.remove,
	}
	for cmd, h := range handlers {
		if err := ctx.Register(Name, cmd, h); err != nil {
			return err
		}
	}
	return nil
}

func fileURI(args json.RawMessage) (fyne.URI, error) {
	var in pathArgs
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	return toURI(in.Path)
}

func toURI(path string) (fyne.URI, error) {
	if path == "" || !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: %q", ErrRelativePath, path)
	}
	return storage.NewFileURI(filepath.Clean(path)), nil
}

func (p *Plugin) readTextFile(_ context.Context, args json.RawMessage) (any, error) {
	uri, err := fileURI(args)
	if err != nil {
		return nil, err
	}

	r, err := storage.Reader(uri)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri.Path(), err)
	}
	defer r.Close()

	data, err := io.ReadAll(io.LimitReader(r, MaxReadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", uri.Path(), err)
	}
	if len(data) > MaxReadSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, uri.Path())
	}
	return string(data), nil
}

func (p *Plugin) writeTextFile(_ context.Context, args json.RawMessage) (any, error) {
	var in writeArgs
	if err := command.DecodeArgs(args, &in); err != nil {
		return nil, err
	}
	uri, err := toURI(in.Path)
	if err != nil {
		return nil, err
	}

	w, err := storage.Writer(uri)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", uri.Path(), err)
	}
	if _, err := io.WriteString(w, in.Contents); err != nil {
		w.Close()
		return nil, fmt.Errorf("write %s: %w", uri.Path(), err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", uri.Path(), err)
	}
	return nil, nil
}

func (p *Plugin) exists(_ context.Context, args json.RawMessage) (any, error) {
	uri, err := fileURI(args)
	if err != nil {
		return nil, err
	}
	return storage.Exists(uri)
}

func (p *Plugin) readDir(_ context.Context, args json.RawMessage) (any, error) {
	uri, err := fileURI(args)
	if err != nil {
		return nil, err
	}

	children, err := storage.List(uri)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", uri.Path(), err)
	}

	entries := make([]DirEntry, 0, len(children))
	for _, child := range children {
		isDir, _ := storage.CanList(child)
		entries = append(entries, DirEntry{Name: child.Name(), IsDirectory: isDir})
	}
	return entries, nil
}

func (p *Plugin) mkdir(_ context.Context, args json.RawMessage) (any, error) {
	uri, err := fileURI(args)
	if err != nil {
		return nil, err
	}
	if err := storage.CreateListable(uri); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", uri.Path(), err)
	}
	return nil, nil
}

func (p *Plugin) remove(_ context.Context, args json.RawMessage) (any, error) {
	uri, err := fileURI(args)
	if err != nil {
		return nil, err
	}
	if err := storage.Delete(uri); err != nil {
		return nil, fmt.Errorf("remove %s: %w", uri.Path(), err)
	}
	return nil, nil
}
