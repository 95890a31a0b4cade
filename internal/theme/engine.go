package theme

// Props holds the properties of a named widget-class style. Values are
// color strings, Font descriptors, or ints (padding, borderwidth).
type Props map[string]any

// Engine is the subset of a toolkit's style engine the manager drives.
// Implementations register theme variants, switch between them, and
// accept named style configuration.
type Engine interface {
	// CreateTheme registers a new theme variant derived from parent.
	CreateTheme(name, parent string) error
	// UseTheme activates a previously created theme.
	UseTheme(name string) error
	// Configure sets properties on a named widget-class style within
	// the active theme.
	Configure(style string, props Props)
	// MapStates sets state-conditional properties (e.g. "active",
	// "selected") on a named style within the active theme.
	MapStates(style string, states map[string]Props)
}
