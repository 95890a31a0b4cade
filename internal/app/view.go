package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tableRows = [][2]string{
	{"alice", "admin"},
	{"bob", "editor"},
	{"carol", "viewer"},
}

func (m Model) View() string {
	var b strings.Builder

	header := m.engine.Style("Header.TLabel").Render(" Tintz — theme preview ")
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(m.engine.Style("Action.TButton").Render("[ Refresh ]"))
	b.WriteString("  ")
	b.WriteString(m.engine.StateStyle("TButton", "active").Render("[ Save ]"))
	b.WriteString("\n\n")

	b.WriteString(m.viewLogin())
	b.WriteString("\n")
	b.WriteString(m.viewTable())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.viewSearch())
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString(m.engine.Style("TLabel").Render("error: " + m.errorMsg))
		b.WriteString("\n")
	}
	hint := fmt.Sprintf("%s   t: toggle  /: styles  q: quit", m.status)
	b.WriteString(m.engine.Style("TLabel").Render(hint))
	b.WriteString("\n")

	frame := m.engine.Style("Main.TFrame")
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	return frame.Render(b.String())
}

func (m Model) viewLogin() string {
	label := m.engine.Style("Login.TLabel")
	entry := m.engine.Style("Login.TEntry")
	user := lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render("User: "), entry.Render("admin     "))
	pass := lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render("Pass: "), entry.Render("********  "))
	button := m.engine.Style("Login.TButton").Render("[ Sign in ]")
	return lipgloss.JoinVertical(lipgloss.Left, user, pass, button) + "\n"
}

func (m Model) viewTable() string {
	var b strings.Builder
	heading := m.engine.Style("Treeview.Heading")
	b.WriteString(heading.Render(fmt.Sprintf(" %-10s %-8s ", "USER", "ROLE")))
	b.WriteString("\n")
	for i, row := range tableRows {
		st := m.engine.Style("Treeview")
		if i == m.row {
			st = m.engine.StateStyle("Treeview", "selected")
		}
		b.WriteString(st.Render(fmt.Sprintf(" %-10s %-8s ", row[0], row[1])))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.engine.Style("TLabel").Render("style: " + m.query + "▌"))
	b.WriteString("\n")
	for i, name := range m.results {
		st := m.engine.Style("Treeview")
		if i == m.selection {
			st = m.engine.StateStyle("Treeview", "selected")
		}
		b.WriteString(st.Render(" " + name + " "))
		b.WriteString("\n")
	}
	return b.String()
}
