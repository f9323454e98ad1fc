package client

import "github.com/charmbracelet/lipgloss"

// styles are bound to the renderer of the output writer, so colors and
// attributes are dropped when the client writes to a pipe or a file.
type styles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	faulty lipgloss.Style
	border lipgloss.Style
	empty  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	cell := r.NewStyle().Padding(0, 1)

	return styles{
		header: cell.Bold(true),
		cell:   cell,
		faulty: cell.Bold(true).Foreground(lipgloss.Color("9")),
		border: r.NewStyle().Faint(true),
		empty:  r.NewStyle().Faint(true),
	}
}
