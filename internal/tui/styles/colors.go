package styles

import "github.com/charmbracelet/lipgloss"

// Studio Dusk -- Dark Palette
// Near-black backgrounds with the Moonworks creative-purple accent.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0b0a10") // Deepest -- main background
	BgPanel   = lipgloss.Color("#14121c") // Panel/card background
	BgSurface = lipgloss.Color("#1d1a29") // Elevated surface
	BgHover   = lipgloss.Color("#2a2639") // Hover/selected row

	// Accents
	AccentPrimary   = lipgloss.Color("#cea0ff") // Creative purple -- primary actions, focus
	AccentSecondary = lipgloss.Color("#8fd3c7") // Soft teal -- secondary info
	AccentGold      = lipgloss.Color("#e8c06a") // Gold -- highlights

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red
	StatusInfo  = lipgloss.Color("#cea0ff") // Purple

	// Text
	TextPrimary   = lipgloss.Color("#ece8f4") // High contrast
	TextSecondary = lipgloss.Color("#9a94ad") // Dimmed
	TextMuted     = lipgloss.Color("#655f78") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#332e45") // Subtle
	BorderFocused = lipgloss.Color("#cea0ff") // Purple focus ring
)
