package menu

// Kind distinguishes the variants of a Node.
type Kind int

const (
	KindItem Kind = iota
	KindSeparator
	KindSubmenu
	KindPredefined
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSeparator:
		return "separator"
	case KindSubmenu:
		return "submenu"
	case KindPredefined:
		return "predefined"
	default:
		return "unknown"
	}
}

// Role names a predefined item whose behaviour belongs to the host toolkit.
type Role string

const (
	RoleUndo      Role = "undo"
	RoleRedo      Role = "redo"
	RoleCut       Role = "cut"
	RoleCopy      Role = "copy"
	RolePaste     Role = "paste"
	RoleSelectAll Role = "select_all"
)

// Label is the default text shown for a predefined role.
func (r Role) Label() string {
	switch r {
	case RoleUndo:
		return "Undo"
	case RoleRedo:
		return "Redo"
	case RoleCut:
		return "Cut"
	case RoleCopy:
		return "Copy"
	case RolePaste:
		return "Paste"
	case RoleSelectAll:
		return "Select All"
	default:
		return string(r)
	}
}

// Node is one entry of the menu tree. Which fields are meaningful depends on
// Kind: items carry ID, Label and an optional Accelerator, submenus carry
// Label and Children, predefined entries carry Role.
type Node struct {
	Kind        Kind
	ID          ID
	Label       string
	Accelerator string
	Role        Role
	Children    []Node
}

// Item returns a custom item. An empty accelerator means none.
func Item(id ID, label, accelerator string) Node {
	return Node{Kind: KindItem, ID: id, Label: label, Accelerator: accelerator}
}

// Separator returns a separator line.
func Separator() Node {
	return Node{Kind: KindSeparator}
}

// Submenu returns a labelled group of children.
func Submenu(label string, children ...Node) Node {
	return Node{Kind: KindSubmenu, Label: label, Children: children}
}

// Predefined returns a host-native item for role.
func Predefined(role Role) Node {
	return Node{Kind: KindPredefined, Role: role, Label: role.Label()}
}

// Walk visits nodes depth-first in display order. Returning false from fn
// stops the walk.
func Walk(nodes []Node, fn func(Node) bool) bool {
	for _, n := range nodes {
		if !fn(n) {
			return false
		}
		if n.Kind == KindSubmenu && !Walk(n.Children, fn) {
			return false
		}
	}
	return true
}

// IDs returns the identifiers of every custom item in display order.
func IDs(nodes []Node) []ID {
	var ids []ID
	Walk(nodes, func(n Node) bool {
		if n.Kind == KindItem {
			ids = append(ids, n.ID)
		}
		return true
	})
	return ids
}

// Find returns the custom item with the given id.
func Find(nodes []Node, id ID) (Node, bool) {
	var found Node
	ok := false
	Walk(nodes, func(n Node) bool {
		if n.Kind == KindItem && n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}
