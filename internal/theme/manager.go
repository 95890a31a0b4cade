package theme

import "fmt"

// BaseTheme is the engine theme both variants derive from.
const BaseTheme = "alt"

// Manager owns the light and dark themes, tracks which one is active,
// and pushes widget-class configuration into the style engine.
type Manager struct {
	engine  Engine
	current string
	themes  map[string]Theme
}

// NewManager creates a manager with both fixed themes. Light starts active.
func NewManager(engine Engine) *Manager {
	return &Manager{
		engine:  engine,
		current: "light",
		themes: map[string]Theme{
			"light": Light(),
			"dark":  Dark(),
		},
	}
}

// SetCurrent selects the active theme by name without reconfiguring the
// engine. Unknown names are ignored.
func (m *Manager) SetCurrent(name string) {
	if _, ok := m.themes[name]; ok {
		m.current = name
	}
}

// CurrentTheme returns the active theme's full data.
func (m *Manager) CurrentTheme() Theme {
	return m.themes[m.current]
}

// Toggle flips between light and dark, activates the new theme on the
// engine, and returns it.
func (m *Manager) Toggle() Theme {
	if m.current == "light" {
		m.current = "dark"
	} else {
		m.current = "light"
	}
	_ = m.engine.UseTheme(m.current)
	return m.themes[m.current]
}

// Setup registers both themes with the engine and configures the widget
// classes for each. The current theme is left active.
func (m *Manager) Setup() error {
	for _, name := range []string{"light", "dark"} {
		if err := m.configureTheme(m.themes[name]); err != nil {
			return err
		}
	}
	return m.engine.UseTheme(m.current)
}

func (m *Manager) configureTheme(t Theme) error {
	colors := t.Colors
	fonts := t.Fonts

	if err := m.engine.CreateTheme(t.Name, BaseTheme); err != nil {
		return fmt.Errorf("create theme %s: %w", t.Name, err)
	}
	if err := m.engine.UseTheme(t.Name); err != nil {
		return fmt.Errorf("use theme %s: %w", t.Name, err)
	}

	// Root defaults inherited by every widget class.
	m.engine.Configure(".", Props{
		"background":  colors["bg"],
		"foreground":  colors["fg"],
		"font":        fonts["default"],
		"borderwidth": 1,
	})

	m.engine.Configure("TFrame", Props{"background": colors["bg"]})

	m.engine.Configure("TLabel", Props{
		"background": colors["bg"],
		"foreground": colors["fg"],
	})

	m.engine.Configure("TEntry", Props{
		"fieldbackground": colors["entry_bg"],
		"foreground":      colors["fg"],
		"insertcolor":     colors["fg"],
		"bordercolor":     colors["border"],
		"lightcolor":      colors["border"],
		"darkcolor":       colors["border"],
	})

	m.engine.Configure("TButton", Props{
		"background":     colors["button_bg"],
		"foreground":     colors["fg"],
		"bordercolor":    colors["border"],
		"focusthickness": 3,
		"focuscolor":     colors["primary"],
	})
	m.engine.MapStates("TButton", map[string]Props{
		"active": {
			"background": colors["button_active"],
			"foreground": colors["fg"],
		},
	})

	m.engine.Configure("Treeview", Props{
		"background":      colors["entry_bg"],
		"foreground":      colors["fg"],
		"fieldbackground": colors["entry_bg"],
		"rowheight":       25,
	})
	m.engine.Configure("Treeview.Heading", Props{
		"background": colors["button_bg"],
		"foreground": colors["fg"],
		"font":       fonts["heading"],
	})
	m.engine.MapStates("Treeview", map[string]Props{
		"selected": {
			"background": colors["select_bg"],
			"foreground": colors["select_fg"],
		},
	})

	return nil
}

// GetStyle returns a resolved style for a known style name against the
// current theme, or nil if the name is unrecognized. Only Action.TButton
// is answered here; the full rule table lives in the styles package.
func (m *Manager) GetStyle(name string) Props {
	if name == "Action.TButton" {
		t := m.CurrentTheme()
		return Props{
			"background": t.Colors["button_bg"],
			"foreground": t.Colors["fg"],
			"font":       t.Fonts["default"],
			"padding":    5,
		}
	}
	return nil
}
