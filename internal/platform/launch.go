package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

var (
	ErrUnsupported = errors.New("not supported on this platform")
	ErrEmptyPath   = errors.New("file path is empty")
	ErrInvalidPath = errors.New("file path contains control characters")
)

// Command is a program invocation.
type Command struct {
	Name string
	Args []string
}

// OpenWith returns the command that opens path with its default application
// on goos.
func OpenWith(goos, path string) (Command, error) {
	switch goos {
	case OSDarwin:
		return Command{OpenCommand, []string{path}}, nil
	case OSWindows:
		return Command{CmdCommand, []string{WindowsCmdFlag, StartCommand, "", path}}, nil
	case OSLinux, OSFreeBSD:
		return Command{XDGOpenCommand, []string{path}}, nil
	default:
		return Command{}, fmt.Errorf("open %s: %w", goos, ErrUnsupported)
	}
}

// RevealWith returns the command that shows path in the file manager on goos.
// Linux has no standard selection flag, so the parent directory is opened.
func RevealWith(goos, path string) (Command, error) {
	switch goos {
	case OSDarwin:
		return Command{OpenCommand, []string{MacOSSelectFlag, path}}, nil
	case OSWindows:
		return Command{ExplorerCommand, []string{WindowsSelectParam + path}}, nil
	case OSLinux, OSFreeBSD:
		return Command{XDGOpenCommand, []string{filepath.Dir(path)}}, nil
	default:
		return Command{}, fmt.Errorf("reveal %s: %w", goos, ErrUnsupported)
	}
}

// CleanPath makes path absolute and rejects control characters.
func CleanPath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	for _, r := range abs {
		if r < 32 || r == 127 {
			return "", ErrInvalidPath
		}
	}
	return filepath.Clean(abs), nil
}

// Launcher runs open and reveal commands for the current OS.
type Launcher struct {
	goos string
	run  func(Command) error
}

// NewLauncher returns a launcher for runtime.GOOS.
func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS, run: runCommand}
}

// Open opens an existing file or directory with its default application.
func (l *Launcher) Open(path string) error {
	return l.launch(path, OpenWith)
}

// Reveal shows an existing file in the system file manager.
func (l *Launcher) Reveal(path string) error {
	return l.launch(path, RevealWith)
}

func (l *Launcher) launch(path string, build func(goos, path string) (Command, error)) error {
	clean, err := CleanPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(clean); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	cmd, err := build(l.goos, clean)
	if err != nil {
		return err
	}
	return l.run(cmd)
}

func runCommand(c Command) error {
	return exec.Command(c.Name, c.Args...).Run()
}
