// Package theme defines the light and dark theme tables and the manager
// that pushes them into a style engine.
package theme

// Font describes a font role: family, point size, and weight.
type Font struct {
	Family string
	Size   int
	Bold   bool
}

// Theme bundles named color and font values. Instances are returned by
// value; callers cannot mutate the registered tables.
type Theme struct {
	Name   string
	Colors map[string]string
	Fonts  map[string]Font
}

// ThemeFunc is a constructor function for a theme.
type ThemeFunc func() Theme

// registry maps theme names to constructors.
var registry = map[string]ThemeFunc{
	"light": Light,
	"dark":  Dark,
}

// Register adds a theme to the registry.
func Register(name string, fn ThemeFunc) {
	registry[name] = fn
}

// Get returns a theme by name. Returns Light if name not found.
func Get(name string) Theme {
	if fn, ok := registry[name]; ok {
		return fn()
	}
	return Light()
}

// Valid returns true if the theme name is registered.
func Valid(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the list of available theme names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func defaultFonts() map[string]Font {
	return map[string]Font{
		"default": {Family: "Segoe UI", Size: 10},
		"heading": {Family: "Segoe UI", Size: 12, Bold: true},
		"title":   {Family: "Segoe UI", Size: 14, Bold: true},
	}
}

// Light is the default bright theme.
func Light() Theme {
	return Theme{
		Name: "light",
		Colors: map[string]string{
			"primary":       "#4a6fa5",
			"secondary":     "#6c757d",
			"success":       "#28a745",
			"danger":        "#dc3545",
			"warning":       "#ffc107",
			"info":          "#17a2b8",
			"bg":            "#f8f9fa",
			"fg":            "#212529",
			"entry_bg":      "#ffffff",
			"select_bg":     "#e2e6ea",
			"select_fg":     "#000000",
			"border":        "#ced4da",
			"button_bg":     "#e9ecef",
			"button_active": "#d3d9df",
			"text_bg":       "#ffffff",
		},
		Fonts: defaultFonts(),
	}
}

// Dark is the low-light theme.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Colors: map[string]string{
			"primary":       "#5a86c2",
			"secondary":     "#5c636a",
			"success":       "#2ecc71",
			"danger":        "#e74c3c",
			"warning":       "#f39c12",
			"info":          "#3498db",
			"bg":            "#2d2d2d",
			"fg":            "#e0e0e0",
			"entry_bg":      "#1e1e1e",
			"select_bg":     "#3d3d3d",
			"select_fg":     "#ffffff",
			"border":        "#444444",
			"button_bg":     "#3d3d3d",
			"button_active": "#4d4d4d",
			"text_bg":       "#252525",
		},
		Fonts: defaultFonts(),
	}
}
