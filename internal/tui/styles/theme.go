package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// Panel is the default panel style: BgPanel background, rounded border in
// BorderNormal, with 1-cell padding on all sides.
var Panel = lipgloss.NewStyle().
	Background(BgPanel).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(1)

// PanelFocused is identical to Panel but uses the purple focus border.
var PanelFocused = lipgloss.NewStyle().
	Background(BgPanel).
	Border(RoundedBorder).
	BorderForeground(BorderFocused).
	Padding(1)

// Card is a compact elevated surface with a thin border and horizontal
// padding only.
var Card = lipgloss.NewStyle().
	Background(BgSurface).
	Border(ThinBorder).
	BorderForeground(BorderNormal).
	PaddingLeft(1).
	PaddingRight(1)

// ---------------------------------------------------------------------------
// Badge helpers
// ---------------------------------------------------------------------------

// Badge returns an inline colored badge such as "● SENT" in the given color.
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}

// StatusBadge returns a pre-styled badge for common status values.
// Recognized statuses: "ok", "warn", "error", "info". Anything else
// falls back to the "info" style.
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "ok":
		return Badge("OK", StatusOK)
	case "warn":
		return Badge("WARN", StatusWarn)
	case "error":
		return Badge("ERROR", StatusError)
	case "info":
		return Badge("INFO", StatusInfo)
	default:
		return Badge(strings.ToUpper(status), StatusInfo)
	}
}

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for question headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels. Pass uppercase strings for the
// conventional LABEL look (lipgloss does not provide an uppercase transform).
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)
