package menu

import "fmt"

// Default builds the application menu: File, Edit, View and Help, in that
// order. appName is used for the "About" entry of the Help group.
func Default(appName string) ([]Node, error) {
	file := Submenu("File",
		Item(IDNew, "New", "CmdOrCtrl+N"),
		Item(IDOpen, "Open", "CmdOrCtrl+O"),
		Separator(),
		Item(IDSave, "Save", "CmdOrCtrl+S"),
		Separator(),
		Item(IDQuit, "Quit", "CmdOrCtrl+Q"),
	)

	edit := Submenu("Edit",
		Predefined(RoleUndo),
		Predefined(RoleRedo),
		Separator(),
		Predefined(RoleCut),
		Predefined(RoleCopy),
		Predefined(RolePaste),
		Predefined(RoleSelectAll),
	)

	view := Submenu("View",
		Item(IDHome, "Home", "CmdOrCtrl+1"),
		Item(IDAbout, "About", "CmdOrCtrl+2"),
		Item(IDSettings, "Settings", "CmdOrCtrl+,"),
		Item(IDProfile, "Profile", "CmdOrCtrl+P"),
		Separator(),
		Item(IDToggleTheme, "Toggle Theme", "CmdOrCtrl+T"),
		Separator(),
		Item(IDReload, "Reload", "CmdOrCtrl+R"),
		Item(IDToggleDevTools, "Toggle DevTools", "F12"),
	)

	help := Submenu("Help",
		Item(IDAboutApp, "About "+appName, ""),
		Item(IDDocumentation, "Documentation", ""),
	)

	root := []Node{file, edit, view, help}
	if err := Validate(root); err != nil {
		return nil, fmt.Errorf("build default menu: %w", err)
	}
	return root, nil
}

// Validate checks the structural invariants of a menu tree: item ids are
// non-empty and unique across the whole tree regardless of nesting, items
// and submenus are labelled, accelerators parse, predefined roles are known.
func Validate(nodes []Node) error {
	seen := make(map[ID]struct{})
	var err error
	Walk(nodes, func(n Node) bool {
		err = validateNode(n, seen)
		return err == nil
	})
	return err
}

func validateNode(n Node, seen map[ID]struct{}) error {
	switch n.Kind {
	case KindItem:
		if n.ID == "" {
			return fmt.Errorf("%w: label %q", ErrEmptyID, n.Label)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}
		if n.Label == "" {
			return fmt.Errorf("%w: item %s", ErrEmptyLabel, n.ID)
		}
		if n.Accelerator != "" {
			if _, err := ParseAccelerator(n.Accelerator); err != nil {
				return fmt.Errorf("item %s: %w", n.ID, err)
			}
		}
	case KindSubmenu:
		if n.Label == "" {
			return fmt.Errorf("%w: submenu", ErrEmptyLabel)
		}
	case KindPredefined:
		switch n.Role {
		case RoleUndo, RoleRedo, RoleCut, RoleCopy, RolePaste, RoleSelectAll:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownRole, n.Role)
		}
	case KindSeparator:
	default:
		return fmt.Errorf("unknown node kind %d", n.Kind)
	}
	return nil
}
