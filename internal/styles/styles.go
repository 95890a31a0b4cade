// Package styles holds the application style rules and resolves their
// theme references before handing them to the style engine.
package styles

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/tintz/tintz/internal/theme"
)

// Value is a style property value: either a literal or a reference into
// the active theme's color/font tables.
type Value interface {
	resolve(t theme.Theme) (any, error)
}

// Literal passes through unchanged.
type Literal struct {
	V any
}

func (l Literal) resolve(theme.Theme) (any, error) { return l.V, nil }

// ColorRef names a key in the theme's color table.
type ColorRef string

func (r ColorRef) resolve(t theme.Theme) (any, error) {
	c, ok := t.Colors[string(r)]
	if !ok {
		return nil, fmt.Errorf("theme %s has no color %q", t.Name, string(r))
	}
	return c, nil
}

// FontRef names a key in the theme's font table.
type FontRef string

func (r FontRef) resolve(t theme.Theme) (any, error) {
	f, ok := t.Fonts[string(r)]
	if !ok {
		return nil, fmt.Errorf("theme %s has no font %q", t.Name, string(r))
	}
	return f, nil
}

// Rule maps property names to values for one named style.
type Rule map[string]Value

// Styles owns the application's style rule table and applies it through
// the theme manager's engine.
type Styles struct {
	manager *theme.Manager
	engine  theme.Engine
	rules   map[string]Rule
}

// New creates the fixed application style table.
func New(manager *theme.Manager, engine theme.Engine) *Styles {
	return &Styles{
		manager: manager,
		engine:  engine,
		rules: map[string]Rule{
			"Main.TFrame": {
				"background": ColorRef("bg"),
			},
			"Header.TLabel": {
				"font":       FontRef("heading"),
				"background": ColorRef("bg"),
				"foreground": ColorRef("primary"),
			},
			"Action.TButton": {
				"font":       FontRef("default"),
				"padding":    Literal{5},
				"background": ColorRef("button_bg"),
				"foreground": ColorRef("fg"),
			},
			"Login.TLabel": {
				"font": FontRef("default"),
			},
			"Login.TButton": {
				"font":    FontRef("default"),
				"padding": Literal{5},
			},
			"Login.TEntry": {
				"font":    FontRef("default"),
				"padding": Literal{5},
			},
			"Treeview.Heading": {
				"font":       FontRef("heading"),
				"background": ColorRef("button_bg"),
				"foreground": ColorRef("fg"),
			},
		},
	}
}

// Resolve substitutes every reference in a rule against the given theme.
func Resolve(rule Rule, t theme.Theme) (theme.Props, error) {
	props := make(theme.Props, len(rule))
	for key, value := range rule {
		resolved, err := value.resolve(t)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", key, err)
		}
		props[key] = resolved
	}
	return props, nil
}

// Setup resolves every rule against the current theme and configures it
// on the engine. Resolved fresh on each call; toggle then re-run.
func (s *Styles) Setup() error {
	current := s.manager.CurrentTheme()
	for name, rule := range s.rules {
		props, err := Resolve(rule, current)
		if err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
		s.engine.Configure(name, props)
	}
	return nil
}

// Lookup resolves a single named rule against the current theme. An
// unknown name yields (nil, nil).
func (s *Styles) Lookup(name string) (theme.Props, error) {
	rule, ok := s.rules[name]
	if !ok {
		return nil, nil
	}
	return Resolve(rule, s.manager.CurrentTheme())
}

// Names returns the style names in sorted order.
func (s *Styles) Names() []string {
	names := make([]string, 0, len(s.rules))
	for name := range s.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search fuzzy-matches the query against style names, best match first.
// An empty query returns all names.
func (s *Styles) Search(query string) []string {
	names := s.Names()
	if query == "" {
		return names
	}
	matches := fuzzy.Find(query, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, names[m.Index])
	}
	return out
}
