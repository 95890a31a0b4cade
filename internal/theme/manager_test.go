package theme

import "testing"

// mockEngine records style engine calls for assertions. Configure and
// MapStates are keyed by "theme/style" since they act on the active theme.
type mockEngine struct {
	created    []string
	used       []string
	active     string
	configured map[string]Props
	mapped     map[string]map[string]Props
}

func newMockEngine() *mockEngine {
	return &mockEngine{
		configured: make(map[string]Props),
		mapped:     make(map[string]map[string]Props),
	}
}

func (e *mockEngine) CreateTheme(name, parent string) error {
	e.created = append(e.created, name+":"+parent)
	return nil
}

func (e *mockEngine) UseTheme(name string) error {
	e.used = append(e.used, name)
	e.active = name
	return nil
}

func (e *mockEngine) Configure(style string, props Props) {
	e.configured[e.active+"/"+style] = props
}

func (e *mockEngine) MapStates(style string, states map[string]Props) {
	e.mapped[e.active+"/"+style] = states
}

func TestManagerSetup(t *testing.T) {
	engine := newMockEngine()
	m := NewManager(engine)

	if err := m.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	wantCreated := []string{"light:alt", "dark:alt"}
	if len(engine.created) != 2 || engine.created[0] != wantCreated[0] || engine.created[1] != wantCreated[1] {
		t.Errorf("created = %v, want %v", engine.created, wantCreated)
	}

	// Both themes configured, current theme left active.
	if got := engine.used[len(engine.used)-1]; got != "light" {
		t.Errorf("final UseTheme = %q, want light", got)
	}

	// Each widget class gets configured under both themes.
	for _, themeName := range []string{"light", "dark"} {
		for _, style := range []string{".", "TFrame", "TLabel", "TEntry", "TButton", "Treeview", "Treeview.Heading"} {
			if _, ok := engine.configured[themeName+"/"+style]; !ok {
				t.Errorf("style %s not configured for theme %s", style, themeName)
			}
		}
	}
	if got := engine.configured["dark/TEntry"]["fieldbackground"]; got != "#1e1e1e" {
		t.Errorf("dark entry fieldbackground = %v, want #1e1e1e", got)
	}

	// State-conditional maps for button hover and row selection.
	if _, ok := engine.mapped["light/TButton"]["active"]; !ok {
		t.Error("TButton missing active state map")
	}
	sel, ok := engine.mapped["light/Treeview"]["selected"]
	if !ok {
		t.Fatal("Treeview missing selected state map")
	}
	if sel["background"] != Light().Colors["select_bg"] {
		t.Errorf("selected background = %v, want %v", sel["background"], Light().Colors["select_bg"])
	}
}

func TestManagerToggle(t *testing.T) {
	engine := newMockEngine()
	m := NewManager(engine)

	if got := m.CurrentTheme().Name; got != "light" {
		t.Fatalf("initial theme = %q, want light", got)
	}

	th := m.Toggle()
	if th.Name != "dark" {
		t.Errorf("Toggle() = %q, want dark", th.Name)
	}
	if got := m.CurrentTheme().Colors["bg"]; got != "#2d2d2d" {
		t.Errorf("current bg after toggle = %q, want #2d2d2d", got)
	}
	if len(engine.used) == 0 || engine.used[len(engine.used)-1] != "dark" {
		t.Errorf("engine.used = %v, want dark activated", engine.used)
	}

	// Involution: toggling twice restores the original theme.
	th = m.Toggle()
	if th.Name != "light" {
		t.Errorf("second Toggle() = %q, want light", th.Name)
	}
	if got := m.CurrentTheme().Colors["bg"]; got != "#f8f9fa" {
		t.Errorf("current bg after double toggle = %q, want #f8f9fa", got)
	}
}

func TestManagerSetCurrent(t *testing.T) {
	m := NewManager(newMockEngine())
	m.SetCurrent("dark")
	if got := m.CurrentTheme().Name; got != "dark" {
		t.Errorf("after SetCurrent(dark): %q", got)
	}
	m.SetCurrent("sepia") // unknown, ignored
	if got := m.CurrentTheme().Name; got != "dark" {
		t.Errorf("unknown SetCurrent changed theme to %q", got)
	}
}

func TestGetStyle(t *testing.T) {
	m := NewManager(newMockEngine())

	props := m.GetStyle("Action.TButton")
	if props == nil {
		t.Fatal("GetStyle(Action.TButton) = nil")
	}
	if props["background"] != "#e9ecef" {
		t.Errorf("background = %v, want #e9ecef", props["background"])
	}
	if props["foreground"] != "#212529" {
		t.Errorf("foreground = %v, want #212529", props["foreground"])
	}
	if props["padding"] != 5 {
		t.Errorf("padding = %v, want 5", props["padding"])
	}
	font, ok := props["font"].(Font)
	if !ok || font.Size != 10 {
		t.Errorf("font = %v, want default 10pt", props["font"])
	}

	// Follows the active theme.
	m.Toggle()
	props = m.GetStyle("Action.TButton")
	if props["background"] != "#3d3d3d" {
		t.Errorf("dark background = %v, want #3d3d3d", props["background"])
	}

	if m.GetStyle("unknown") != nil {
		t.Error("GetStyle(unknown) should be nil")
	}
}
