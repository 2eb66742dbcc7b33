// ABOUTME: Rendering for the chat transcript, status bar, and completion hint
// ABOUTME: Lipgloss-styled bubbles; runewidth keeps the status bar aligned

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "memuat..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.completionHint())
	return b.String()
}

// renderTranscript lays the messages out as alternating bubbles.
func (m *Model) renderTranscript() string {
	maxWidth := m.width * 3 / 4
	if maxWidth < 20 {
		maxWidth = m.width
	}

	lines := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		switch msg.role {
		case roleUser:
			bubble := userStyle.MaxWidth(maxWidth).Render(msg.text)
			lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble))
		default:
			lines = append(lines, botStyle.MaxWidth(maxWidth).Render(msg.text))
		}
	}
	return strings.Join(lines, "\n")
}

// statusBar shows the active algorithm and key bindings, padded to full width.
func (m *Model) statusBar() string {
	left := " tanya · algoritma: " + strings.ToUpper(m.algo.String())
	right := "ctrl+a ganti algoritma · tab lengkapi · esc keluar "

	pad := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		return statusStyle.Render(left)
	}
	return statusStyle.Render(left + strings.Repeat(" ", pad) + right)
}

// completionHint shows the best fuzzy completion for the current input, or
// the last storage error when one is pending.
func (m *Model) completionHint() string {
	if m.err != nil {
		return hintStyle.Render(m.err.Error())
	}
	if len(m.completions) == 0 {
		return ""
	}
	return hintStyle.Render("tab -> " + m.completions[0])
}

// complete ranks stored questions against the typed prefix.
func (m *Model) complete(typed string) []string {
	typed = strings.TrimSpace(typed)
	if typed == "" || len(m.questions) == 0 {
		return nil
	}
	matches := fuzzy.Find(typed, m.questions)
	out := make([]string, 0, min(3, len(matches)))
	for _, match := range matches {
		out = append(out, match.Str)
		if len(out) == 3 {
			break
		}
	}
	return out
}
