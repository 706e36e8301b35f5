package menu

import (
	"errors"
	"testing"
)

func TestDefaultGroupsAndOrder(t *testing.T) {
	nodes, err := Default("Squri")
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	wantGroups := []string{"File", "Edit", "View", "Help"}
	if len(nodes) != len(wantGroups) {
		t.Fatalf("expected %d groups, got %d", len(wantGroups), len(nodes))
	}
	for i, want := range wantGroups {
		if nodes[i].Kind != KindSubmenu || nodes[i].Label != want {
			t.Errorf("group %d: expected submenu %q, got %s %q", i, want, nodes[i].Kind, nodes[i].Label)
		}
	}

	wantIDs := []ID{
		IDNew, IDOpen, IDSave, IDQuit,
		IDHome, IDAbout, IDSettings, IDProfile, IDToggleTheme, IDReload, IDToggleDevTools,
		IDAboutApp, IDDocumentation,
	}
	got := IDs(nodes)
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d items, got %d: %v", len(wantIDs), len(got), got)
	}
	for i := range wantIDs {
		if got[i] != wantIDs[i] {
			t.Errorf("item %d: expected %q, got %q", i, wantIDs[i], got[i])
		}
	}
}

func TestDefaultGroupLayout(t *testing.T) {
	nodes, err := Default("Squri")
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	kinds := func(n Node) []Kind {
		out := make([]Kind, len(n.Children))
		for i, c := range n.Children {
			out[i] = c.Kind
		}
		return out
	}

	tests := []struct {
		group int
		want  []Kind
	}{
		{0, []Kind{KindItem, KindItem, KindSeparator, KindItem, KindSeparator, KindItem}},
		{1, []Kind{KindPredefined, KindPredefined, KindSeparator, KindPredefined, KindPredefined, KindPredefined, KindPredefined}},
		{2, []Kind{KindItem, KindItem, KindItem, KindItem, KindSeparator, KindItem, KindSeparator, KindItem, KindItem}},
		{3, []Kind{KindItem, KindItem}},
	}

	for _, tt := range tests {
		got := kinds(nodes[tt.group])
		if len(got) != len(tt.want) {
			t.Errorf("group %s: expected %d children, got %d", nodes[tt.group].Label, len(tt.want), len(got))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("group %s child %d: expected %s, got %s", nodes[tt.group].Label, i, tt.want[i], got[i])
			}
		}
	}
}

func TestDefaultAccelerators(t *testing.T) {
	nodes, err := Default("Squri")
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	want := map[ID]string{
		IDNew:            "CmdOrCtrl+N",
		IDOpen:           "CmdOrCtrl+O",
		IDSave:           "CmdOrCtrl+S",
		IDQuit:           "CmdOrCtrl+Q",
		IDHome:           "CmdOrCtrl+1",
		IDAbout:          "CmdOrCtrl+2",
		IDSettings:       "CmdOrCtrl+,",
		IDProfile:        "CmdOrCtrl+P",
		IDToggleTheme:    "CmdOrCtrl+T",
		IDReload:         "CmdOrCtrl+R",
		IDToggleDevTools: "F12",
		IDAboutApp:       "",
		IDDocumentation:  "",
	}
	for id, accel := range want {
		n, ok := Find(nodes, id)
		if !ok {
			t.Errorf("item %q missing", id)
			continue
		}
		if n.Accelerator != accel {
			t.Errorf("item %q: expected accelerator %q, got %q", id, accel, n.Accelerator)
		}
	}

	about, _ := Find(nodes, IDAboutApp)
	if about.Label != "About Squri" {
		t.Errorf("expected About Squri label, got %q", about.Label)
	}
}

func TestEveryMenuItemIsKnown(t *testing.T) {
	nodes, err := Default("Squri")
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	ids := IDs(nodes)
	for _, id := range ids {
		if !id.IsKnown() {
			t.Errorf("menu item %q has no dispatch entry", id)
		}
	}
	if len(ids) != len(KnownIDs()) {
		t.Errorf("expected every known id in the menu: %d vs %d", len(ids), len(KnownIDs()))
	}
}

func TestValidateRejectsDuplicateAcrossSubmenus(t *testing.T) {
	nodes := []Node{
		Submenu("File", Item(IDSave, "Save", "")),
		Submenu("Other", Submenu("Nested", Item(IDSave, "Save again", ""))),
	}

	err := Validate(nodes)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  error
	}{
		{"empty id", []Node{Item("", "Nameless", "")}, ErrEmptyID},
		{"empty label", []Node{Item(IDNew, "", "")}, ErrEmptyLabel},
		{"empty submenu label", []Node{Submenu("")}, ErrEmptyLabel},
		{"bad accelerator", []Node{Item(IDNew, "New", "Hyper+N")}, ErrInvalidAccelerator},
		{"unknown role", []Node{{Kind: KindPredefined, Role: "explode"}}, ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.nodes); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestWalkStopsEarly(t *testing.T) {
	nodes, err := Default("Squri")
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	visited := 0
	completed := Walk(nodes, func(n Node) bool {
		visited++
		return n.ID != IDOpen
	})
	if completed {
		t.Error("expected walk to report early stop")
	}
	// File submenu, New, Open
	if visited != 3 {
		t.Errorf("expected 3 visits, got %d", visited)
	}
}
