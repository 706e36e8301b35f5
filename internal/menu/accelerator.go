package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a bit set of accelerator modifier keys.
type Modifier uint8

const (
	// ModCmdOrCtrl is Command on macOS and Control elsewhere.
	ModCmdOrCtrl Modifier = 1 << iota
	ModSuper
	ModCtrl
	ModAlt
	ModShift
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCmdOrCtrl, "CmdOrCtrl"},
	{ModSuper, "Super"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
}

// Accelerator is the parsed form of a keyboard shortcut string such as
// "CmdOrCtrl+N" or "F12".
type Accelerator struct {
	Modifiers Modifier
	// Key is the canonical key name: an upper-case letter, a digit, a single
	// punctuation character, "F1".."F24", or a named key like "Space".
	Key string
}

// Has reports whether m is part of the accelerator.
func (a Accelerator) Has(m Modifier) bool {
	return a.Modifiers&m != 0
}

// String renders the accelerator in canonical form.
func (a Accelerator) String() string {
	parts := make([]string, 0, len(modifierNames)+1)
	for _, mn := range modifierNames {
		if a.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(append(parts, a.Key), "+")
}

var namedKeys = map[string]string{
	"space":     "Space",
	"tab":       "Tab",
	"enter":     "Enter",
	"return":    "Enter",
	"esc":       "Escape",
	"escape":    "Escape",
	"backspace": "Backspace",
	"delete":    "Delete",
	"del":       "Delete",
	"insert":    "Insert",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"plus":      "+",
}

// ParseAccelerator parses a "+"-separated accelerator. The last segment is
// the key, every segment before it a modifier.
func ParseAccelerator(s string) (Accelerator, error) {
	var acc Accelerator
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return acc, fmt.Errorf("%w: empty", ErrInvalidAccelerator)
	}

	parts := strings.Split(trimmed, "+")
	for _, raw := range parts[:len(parts)-1] {
		mod, err := parseModifier(raw)
		if err != nil {
			return Accelerator{}, fmt.Errorf("%w: %q: %v", ErrInvalidAccelerator, s, err)
		}
		if acc.Has(mod) {
			return Accelerator{}, fmt.Errorf("%w: %q: repeated modifier %s", ErrInvalidAccelerator, s, raw)
		}
		acc.Modifiers |= mod
	}

	key, err := parseKey(parts[len(parts)-1])
	if err != nil {
		return Accelerator{}, fmt.Errorf("%w: %q: %v", ErrInvalidAccelerator, s, err)
	}
	acc.Key = key
	return acc, nil
}

func parseModifier(raw string) (Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cmdorctrl", "commandorcontrol", "cmdorcontrol", "commandorctrl":
		return ModCmdOrCtrl, nil
	case "cmd", "command", "super", "meta":
		return ModSuper, nil
	case "ctrl", "control":
		return ModCtrl, nil
	case "alt", "option", "opt":
		return ModAlt, nil
	case "shift":
		return ModShift, nil
	case "":
		return 0, fmt.Errorf("empty modifier")
	default:
		return 0, fmt.Errorf("unknown modifier %q", raw)
	}
}

func parseKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", fmt.Errorf("missing key")
	}

	if len(key) == 1 {
		c := key[0]
		switch {
		case c >= 'a' && c <= 'z':
			return strings.ToUpper(key), nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return key, nil
		case strings.ContainsRune(",.;'/\\[]-=`", rune(c)):
			return key, nil
		default:
			return "", fmt.Errorf("unsupported key %q", key)
		}
	}

	if key[0] == 'F' || key[0] == 'f' {
		if n, err := strconv.Atoi(key[1:]); err == nil {
			if n < 1 || n > 24 {
				return "", fmt.Errorf("function key out of range: %s", key)
			}
			return "F" + strconv.Itoa(n), nil
		}
	}

	if named, ok := namedKeys[strings.ToLower(key)]; ok {
		return named, nil
	}
	return "", fmt.Errorf("unsupported key %q", key)
}
