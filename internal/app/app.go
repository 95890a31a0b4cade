// Package app is the interactive theme preview: a bubbletea model that
// renders the styled widget classes and toggles the theme at runtime.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tintz/tintz/internal/config"
	"github.com/tintz/tintz/internal/state"
	"github.com/tintz/tintz/internal/styles"
	"github.com/tintz/tintz/internal/theme"
	"github.com/tintz/tintz/internal/ui"
)

// Model drives the theme preview screen.
type Model struct {
	cfg     *config.Config
	manager *theme.Manager
	styles  *styles.Styles
	engine  *ui.Engine
	store   *state.Store
	logger  *slog.Logger

	width     int
	height    int
	row       int
	status    string
	errorMsg  string
	searching bool
	query     string
	results   []string
	selection int
}

// New creates the preview model. store and logger may be nil.
func New(cfg *config.Config, manager *theme.Manager, st *styles.Styles, engine *ui.Engine, store *state.Store, logger *slog.Logger) Model {
	return Model{
		cfg:     cfg,
		manager: manager,
		styles:  st,
		engine:  engine,
		store:   store,
		logger:  logger,
		status:  fmt.Sprintf("theme: %s", manager.CurrentTheme().Name),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

type savedMsg struct {
	err error
}

func (m Model) saveThemeCmd(name string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return savedMsg{err: store.Save(ctx, name)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("save theme: %v", msg.err)
			if m.logger != nil {
				m.logger.Error("save theme", slog.Any("err", msg.err))
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			return m.toggleTheme()
		case "/":
			m.searching = true
			m.query = ""
			m.results = m.styles.Search("")
			m.selection = 0
			return m, nil
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
			return m, nil
		case "down", "j":
			if m.row < len(tableRows)-1 {
				m.row++
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	t := m.manager.Toggle()
	if err := m.styles.Setup(); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.status = fmt.Sprintf("theme: %s", t.Name)
	m.errorMsg = ""
	if m.logger != nil {
		m.logger.Info("theme toggled", slog.String("theme", t.Name))
	}
	return m, m.saveThemeCmd(t.Name)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		return m, nil
	case "enter":
		m.searching = false
		if m.selection < len(m.results) {
			name := m.results[m.selection]
			props, err := m.styles.Lookup(name)
			if err != nil {
				m.errorMsg = err.Error()
				return m, nil
			}
			m.status = fmt.Sprintf("%s: %v", name, props)
		}
		return m, nil
	case "up":
		if m.selection > 0 {
			m.selection--
		}
		return m, nil
	case "down":
		if m.selection < len(m.results)-1 {
			m.selection++
		}
		return m, nil
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.results = m.styles.Search(m.query)
			m.selection = 0
		}
		return m, nil
	default:
		if len(msg.Runes) == 1 {
			m.query += string(msg.Runes)
			m.results = m.styles.Search(m.query)
			m.selection = 0
		}
		return m, nil
	}
}
