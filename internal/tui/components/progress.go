package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

// SectionTrack shows a per-section progress indicator across the wizard.
type SectionTrack struct {
	Sections []string // section labels in catalog order
	Current  int      // 0-indexed current section
	Width    int
}

// Render returns the styled section indicator.
// Completed sections get a filled green dot, the current section gets a
// purple bold dot, and future sections get an empty muted circle.
func (p SectionTrack) Render() string {
	if len(p.Sections) == 0 {
		return ""
	}

	var parts []string

	for i, label := range p.Sections {
		var dot string
		var labelStr string

		switch {
		case i < p.Current:
			// Completed.
			dot = lipgloss.NewStyle().Foreground(styles.StatusOK).Render("●")
			labelStr = lipgloss.NewStyle().Foreground(styles.StatusOK).Render(label)
		case i == p.Current:
			// Current section.
			dot = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render("●")
			labelStr = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render(label)
		default:
			// Future section.
			dot = lipgloss.NewStyle().Foreground(styles.TextMuted).Render("○")
			labelStr = lipgloss.NewStyle().Foreground(styles.TextMuted).Render(label)
		}

		parts = append(parts, dot+" "+labelStr)
	}

	separator := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  ")
	return strings.Join(parts, separator)
}

// ProgressBar renders a filled bar for the given fraction with a trailing
// "question x of y" counter.
func ProgressBar(position, total, width int) string {
	if total <= 0 {
		return ""
	}
	if width <= 10 {
		width = 10
	}

	frac := float64(position+1) / float64(total)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	bar := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Render(strings.Repeat("█", filled))
	bar += lipgloss.NewStyle().Foreground(styles.TextMuted).Render(strings.Repeat("░", width-filled))

	counter := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(
		fmt.Sprintf(" %d/%d", position+1, total),
	)
	return bar + counter
}
