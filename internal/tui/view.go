package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#3498db")
	colorMuted  = lipgloss.Color("#6c757d")
	colorError  = lipgloss.Color("#e74c3c")
	colorOK     = lipgloss.Color("#27ae60")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	copiedStyle   = lipgloss.NewStyle().Foreground(colorOK)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	shareBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Blog Idea Generator"))
	if m.readOnly {
		b.WriteString(mutedStyle.Render("  (shared, read-only)"))
	}
	b.WriteString("\n\n")

	if m.readOnly {
		b.WriteString(headingStyle.Render("Topic: "))
		b.WriteString(m.topic)
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.loadingText()))
		b.WriteString("\n")
	}

	if len(m.ideas) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Blog Ideas"))
		b.WriteString(m.copiedBadge(copiedIdeas))
		b.WriteString("\n")
		for i, idea := range m.ideas {
			b.WriteString(m.renderIdea(i, idea))
			b.WriteString("\n")
		}
	}

	if len(m.outline) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Outline"))
		if m.selectedIdea != nil {
			b.WriteString(mutedStyle.Render(": " + *m.selectedIdea))
		}
		b.WriteString(m.copiedBadge(copiedOutline))
		b.WriteString("\n")
		for i, section := range m.outline {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, section)
		}
	}

	if m.shareLink != "" {
		b.WriteString("\n")
		b.WriteString(shareBoxStyle.Render("Share link: " + m.shareLink + m.copiedBadge(copiedShare)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderIdea(i int, idea string) string {
	prefix := "  "
	if !m.readOnly && m.focus == focusIdeas && i == m.cursor {
		prefix = cursorStyle.Render("> ")
	}
	line := fmt.Sprintf("%d. %s", i+1, idea)
	if m.selectedIdea != nil && *m.selectedIdea == idea {
		line = selectedStyle.Render(line)
	}
	return prefix + line
}

func (m Model) copiedBadge(tag copyTag) string {
	if m.copied != tag {
		return ""
	}
	return copiedStyle.Render("  copied!")
}

func (m Model) loadingText() string {
	switch m.phase {
	case phaseSubmittingTopic:
		return "Generating ideas..."
	case phaseGeneratingOutline:
		return "Generating outline..."
	default:
		return "Working..."
	}
}

func (m Model) helpText() string {
	if m.readOnly {
		return "c copy ideas • o copy outline • q quit"
	}
	if m.focus == focusInput {
		return "enter generate ideas • tab select ideas • esc quit"
	}
	return "↑/↓ move • enter outline • c copy ideas • o copy outline • s share • l copy link • tab edit topic • q quit"
}
