package host

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/andeya/squri/internal/menu"
)

var ErrTopLevel = errors.New("top-level menu entries must be submenus")

var keyNames = map[string]fyne.KeyName{
	"Space":     fyne.KeySpace,
	"Tab":       fyne.KeyTab,
	"Enter":     fyne.KeyReturn,
	"Escape":    fyne.KeyEscape,
	"Backspace": fyne.KeyBackspace,
	"Delete":    fyne.KeyDelete,
	"Insert":    fyne.KeyInsert,
	"Home":      fyne.KeyHome,
	"End":       fyne.KeyEnd,
	"PageUp":    fyne.KeyPageUp,
	"PageDown":  fyne.KeyPageDown,
	"Up":        fyne.KeyUp,
	"Down":      fyne.KeyDown,
	"Left":      fyne.KeyLeft,
	"Right":     fyne.KeyRight,
	"F1":        fyne.KeyF1,
	"F2":        fyne.KeyF2,
	"F3":        fyne.KeyF3,
	"F4":        fyne.KeyF4,
	"F5":        fyne.KeyF5,
	"F6":        fyne.KeyF6,
	"F7":        fyne.KeyF7,
	"F8":        fyne.KeyF8,
	"F9":        fyne.KeyF9,
	"F10":       fyne.KeyF10,
	"F11":       fyne.KeyF11,
	"F12":       fyne.KeyF12,
}

// Shortcut converts a parsed accelerator to a Fyne shortcut. Keys Fyne has
// no name for (F13 and up) report false.
func Shortcut(acc menu.Accelerator) (*desktop.CustomShortcut, bool) {
	key, ok := keyNames[acc.Key]
	if !ok && len(acc.Key) == 1 {
		// Letters, digits and punctuation share their Fyne key name.
		key, ok = fyne.KeyName(acc.Key), true
	}
	if !ok {
		return nil, false
	}

	var mod fyne.KeyModifier
	if acc.Has(menu.ModCmdOrCtrl) {
		mod |= fyne.KeyModifierShortcutDefault
	}
	if acc.Has(menu.ModSuper) {
		mod |= fyne.KeyModifierSuper
	}
	if acc.Has(menu.ModCtrl) {
		mod |= fyne.KeyModifierControl
	}
	if acc.Has(menu.ModAlt) {
		mod |= fyne.KeyModifierAlt
	}
	if acc.Has(menu.ModShift) {
		mod |= fyne.KeyModifierShift
	}
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}, true
}

// MainMenu renders a validated menu tree. Custom items call onActivate with
// their id; predefined items are handled by the focused widget of the main
// window and never reach onActivate.
func (h *Host) MainMenu(nodes []menu.Node, onActivate func(menu.ID)) (*fyne.MainMenu, error) {
	if err := menu.Validate(nodes); err != nil {
		return nil, err
	}

	menus := make([]*fyne.Menu, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != menu.KindSubmenu {
			return nil, fmt.Errorf("%w: %s %q", ErrTopLevel, n.Kind, n.Label)
		}
		menus = append(menus, fyne.NewMenu(n.Label, h.menuItems(n.Children, onActivate)...))
	}
	return fyne.NewMainMenu(menus...), nil
}

func (h *Host) menuItems(nodes []menu.Node, onActivate func(menu.ID)) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case menu.KindSeparator:
			items = append(items, fyne.NewMenuItemSeparator())
		case menu.KindSubmenu:
			item := fyne.NewMenuItem(n.Label, nil)
			item.ChildMenu = fyne.NewMenu(n.Label, h.menuItems(n.Children, onActivate)...)
			items = append(items, item)
		case menu.KindPredefined:
			items = append(items, h.predefinedItem(n))
		case menu.KindItem:
			items = append(items, h.customItem(n, onActivate))
		}
	}
	return items
}

func (h *Host) customItem(n menu.Node, onActivate func(menu.ID)) *fyne.MenuItem {
	id := n.ID
	item := fyne.NewMenuItem(n.Label, func() { onActivate(id) })
	item.IsQuit = id == menu.IDQuit

	if n.Accelerator != "" {
		acc, err := menu.ParseAccelerator(n.Accelerator)
		if err == nil {
			if sc, ok := Shortcut(acc); ok {
				item.Shortcut = sc
			} else {
				h.log.Warn().Str("id", id.String()).Str("accelerator", acc.String()).Msg("no native key for accelerator")
			}
		}
	}
	return item
}

func (h *Host) predefinedItem(n menu.Node) *fyne.MenuItem {
	role := n.Role
	item := fyne.NewMenuItem(n.Label, func() {
		w := h.Lookup(menu.MainWindow)
		if w == nil {
			return
		}
		sendToFocused(w, roleShortcut(role, w.Clipboard()))
	})
	item.Shortcut = roleShortcut(role, nil)
	return item
}

func roleShortcut(role menu.Role, cb fyne.Clipboard) fyne.Shortcut {
	switch role {
	case menu.RoleUndo:
		return &fyne.ShortcutUndo{}
	case menu.RoleRedo:
		return &fyne.ShortcutRedo{}
	case menu.RoleCut:
		return &fyne.ShortcutCut{Clipboard: cb}
	case menu.RoleCopy:
		return &fyne.ShortcutCopy{Clipboard: cb}
	case menu.RolePaste:
		return &fyne.ShortcutPaste{Clipboard: cb}
	default:
		return &fyne.ShortcutSelectAll{}
	}
}

func sendToFocused(w fyne.Window, sc fyne.Shortcut) {
	if target, ok := w.Canvas().Focused().(fyne.Shortcutable); ok {
		target.TypedShortcut(sc)
	}
}
