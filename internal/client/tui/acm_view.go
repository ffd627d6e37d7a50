package tui

import (
	"strings"

	"campusfind/internal/client/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// newACMTable builds the read-only permission table for the security
// section. Object rows are sorted for stable output.
func newACMTable(m models.ACM) table.Model {
	columns := []table.Column{
		{Title: "Object", Width: 16},
		{Title: "Permissions", Width: 44},
	}

	var rows []table.Row
	for _, obj := range m.Objects() {
		rows = append(rows, table.Row{obj, strings.Join(m.Permissions[obj], ", ")})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(colorPrimary)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

func renderACM(m models.ACM, t table.Model) string {
	var b strings.Builder
	b.WriteString("Role: " + roleBadge(m.Role) + "\n\n")
	b.WriteString(t.View())
	return b.String()
}
