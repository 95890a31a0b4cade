package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/tintz/tintz/internal/theme"
)

func TestCreateAndUseTheme(t *testing.T) {
	e := NewEngine()

	if err := e.CreateTheme("light", "alt"); err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}
	if err := e.CreateTheme("light", "alt"); err == nil {
		t.Error("duplicate CreateTheme should fail")
	}
	if err := e.UseTheme("light"); err != nil {
		t.Fatalf("UseTheme: %v", err)
	}
	if got := e.ActiveTheme(); got != "light" {
		t.Errorf("ActiveTheme = %q, want light", got)
	}
	if err := e.UseTheme("sepia"); err == nil {
		t.Error("UseTheme on unknown theme should fail")
	}
}

func TestConfigureBuildsStyles(t *testing.T) {
	e := NewEngine()
	_ = e.CreateTheme("light", "alt")
	_ = e.UseTheme("light")

	e.Configure("Header.TLabel", theme.Props{
		"background": "#f8f9fa",
		"foreground": "#4a6fa5",
		"font":       theme.Font{Family: "Segoe UI", Size: 12, Bold: true},
	})

	st := e.Style("Header.TLabel")
	if got := st.GetBackground(); got != lipgloss.Color("#f8f9fa") {
		t.Errorf("background = %v, want #f8f9fa", got)
	}
	if got := st.GetForeground(); got != lipgloss.Color("#4a6fa5") {
		t.Errorf("foreground = %v, want #4a6fa5", got)
	}
	if !st.GetBold() {
		t.Error("heading font should render bold")
	}

	// Unknown names yield the zero style, not an error.
	zero := e.Style("Missing.TWidget")
	if zero.GetBold() || zero.GetBackground() != (lipgloss.NoColor{}) {
		t.Error("unknown style should be zero style")
	}
}

func TestStylesArePerTheme(t *testing.T) {
	e := NewEngine()
	for _, name := range []string{"light", "dark"} {
		_ = e.CreateTheme(name, "alt")
		_ = e.UseTheme(name)
		bg := "#f8f9fa"
		if name == "dark" {
			bg = "#2d2d2d"
		}
		e.Configure("Main.TFrame", theme.Props{"background": bg})
	}

	_ = e.UseTheme("light")
	if got := e.Style("Main.TFrame").GetBackground(); got != lipgloss.Color("#f8f9fa") {
		t.Errorf("light frame background = %v", got)
	}
	_ = e.UseTheme("dark")
	if got := e.Style("Main.TFrame").GetBackground(); got != lipgloss.Color("#2d2d2d") {
		t.Errorf("dark frame background = %v", got)
	}
}

func TestStateStyle(t *testing.T) {
	e := NewEngine()
	_ = e.CreateTheme("light", "alt")
	_ = e.UseTheme("light")

	e.Configure("TButton", theme.Props{
		"background": "#e9ecef",
		"foreground": "#212529",
	})
	e.MapStates("TButton", map[string]theme.Props{
		"active": {"background": "#d3d9df"},
	})

	active := e.StateStyle("TButton", "active")
	if got := active.GetBackground(); got != lipgloss.Color("#d3d9df") {
		t.Errorf("active background = %v, want #d3d9df", got)
	}
	// Base property survives where the state map is silent.
	if got := active.GetForeground(); got != lipgloss.Color("#212529") {
		t.Errorf("active foreground = %v, want base #212529", got)
	}

	// Missing state falls back to the base style.
	hover := e.StateStyle("TButton", "hover")
	if got := hover.GetBackground(); got != lipgloss.Color("#e9ecef") {
		t.Errorf("fallback background = %v, want #e9ecef", got)
	}
}

func TestPaddingProp(t *testing.T) {
	e := NewEngine()
	_ = e.CreateTheme("light", "alt")
	_ = e.UseTheme("light")

	e.Configure("Action.TButton", theme.Props{"padding": 5})
	st := e.Style("Action.TButton")
	if got := st.GetPaddingLeft(); got != 5 {
		t.Errorf("padding left = %d, want 5", got)
	}
	if got := st.GetPaddingRight(); got != 5 {
		t.Errorf("padding right = %d, want 5", got)
	}
}
