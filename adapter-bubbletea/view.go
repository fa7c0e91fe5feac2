package bubble_adapter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/calkeys/core"
	"github.com/rivo/uniseg"
)

const (
	defaultWidth = 80
	helpText     = "h/l week · i new event · g goto (gg today) · / search · tab notes · q quit"
)

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var sections []string

	if m.calendar != nil {
		sections = append(sections, m.calendar.View(m.theme, width))
	}

	sections = append(sections, m.field.View())

	if overlay := m.renderOverlay(width); overlay != "" {
		sections = append(sections, overlay)
	}

	sections = append(sections, m.commandLine(width), m.theme.HelpStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderOverlay(width int) string {
	overlay := m.editor.Overlay()
	if !overlay.Visible {
		return ""
	}

	label := m.modeStyle().Render(" " + overlay.ModeLabel + " ")
	// border and padding of the overlay box, plus the gap after the label
	inner := max(1, width-lipgloss.Width(label)-5)
	buffer := m.theme.BufferStyle.Render(truncateLeft(overlay.Buffer, inner))

	content := lipgloss.JoinHorizontal(lipgloss.Top, label, " ", buffer)

	if overlay.HintVisible {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			content,
			m.theme.HintStyle.Width(max(1, width-4)).Render(overlay.Hint),
		)
	}

	return m.theme.OverlayStyle.Render(content)
}

func (m Model) modeStyle() lipgloss.Style {
	switch m.editor.GetState().Mode {
	case editor.InsertMode:
		return m.theme.InsertModeStyle
	case editor.GotoMode:
		return m.theme.GotoModeStyle
	case editor.SearchMode:
		return m.theme.SearchModeStyle
	}
	return lipgloss.NewStyle()
}

func (m Model) commandLine(width int) string {
	var line string
	switch {
	case m.err != nil:
		line = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	case m.message != "":
		line = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}

	paddingWidth := width - lipgloss.Width(line)
	if paddingWidth > 0 {
		line += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return line
}

// truncateLeft keeps the end of s so that it fits in width cells. The
// cursor sits at the end of the buffer, so the start is what gets dropped.
func truncateLeft(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var clusters []string
	var widths []int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
		widths = append(widths, g.Width())
	}

	const marker = "<"
	budget := width - len(marker)
	used := 0
	i := len(clusters)
	for i > 0 && used+widths[i-1] <= budget {
		i--
		used += widths[i]
	}

	return marker + strings.Join(clusters[i:], "")
}
