// Package ui implements the style engine on top of lipgloss.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tintz/tintz/internal/theme"
)

type styleSet struct {
	styles map[string]lipgloss.Style
	states map[string]map[string]lipgloss.Style
}

func newStyleSet() *styleSet {
	return &styleSet{
		styles: make(map[string]lipgloss.Style),
		states: make(map[string]map[string]lipgloss.Style),
	}
}

// Engine renders theme configuration into named lipgloss styles. Each
// registered theme keeps its own style set; UseTheme switches which set
// answers Style and StateStyle.
type Engine struct {
	sets   map[string]*styleSet
	active string
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{sets: make(map[string]*styleSet)}
}

// CreateTheme registers a theme variant. The parent name is accepted for
// interface compatibility; lipgloss styles do not inherit.
func (e *Engine) CreateTheme(name, _ string) error {
	if _, ok := e.sets[name]; ok {
		return fmt.Errorf("theme %q already exists", name)
	}
	e.sets[name] = newStyleSet()
	return nil
}

// UseTheme activates a registered theme.
func (e *Engine) UseTheme(name string) error {
	if _, ok := e.sets[name]; !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	e.active = name
	return nil
}

// ActiveTheme returns the name of the active theme.
func (e *Engine) ActiveTheme() string {
	return e.active
}

// Configure builds a lipgloss style from props and stores it under the
// given name in the active theme's set.
func (e *Engine) Configure(style string, props theme.Props) {
	set, ok := e.sets[e.active]
	if !ok {
		return
	}
	set.styles[style] = buildStyle(props)
}

// MapStates stores state-conditional styles for a named style. The base
// style's properties are applied first, then the state's overrides.
func (e *Engine) MapStates(style string, states map[string]theme.Props) {
	set, ok := e.sets[e.active]
	if !ok {
		return
	}
	base, hasBase := set.styles[style]
	byState := make(map[string]lipgloss.Style, len(states))
	for state, props := range states {
		st := buildStyle(props)
		if hasBase {
			// State overrides win; base fills whatever they leave unset.
			st = st.Inherit(base)
		}
		byState[state] = st
	}
	set.states[style] = byState
}

// Style returns the named style from the active theme, or the zero style
// if the name is unknown.
func (e *Engine) Style(name string) lipgloss.Style {
	if set, ok := e.sets[e.active]; ok {
		if st, ok := set.styles[name]; ok {
			return st
		}
	}
	return lipgloss.NewStyle()
}

// StateStyle returns the style for a name in a given interaction state,
// falling back to the base style when no state map exists.
func (e *Engine) StateStyle(name, state string) lipgloss.Style {
	if set, ok := e.sets[e.active]; ok {
		if byState, ok := set.states[name]; ok {
			if st, ok := byState[state]; ok {
				return st
			}
		}
	}
	return e.Style(name)
}

func buildStyle(props theme.Props) lipgloss.Style {
	st := lipgloss.NewStyle()
	for key, value := range props {
		switch key {
		case "background", "fieldbackground":
			if c, ok := value.(string); ok {
				st = st.Background(lipgloss.Color(c))
			}
		case "foreground":
			if c, ok := value.(string); ok {
				st = st.Foreground(lipgloss.Color(c))
			}
		case "bordercolor":
			if c, ok := value.(string); ok {
				st = st.BorderForeground(lipgloss.Color(c))
			}
		case "font":
			if f, ok := value.(theme.Font); ok && f.Bold {
				st = st.Bold(true)
			}
		case "padding":
			if p, ok := value.(int); ok {
				st = st.Padding(0, p)
			}
		}
	}
	return st
}
