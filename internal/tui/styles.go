package tui

import "github.com/charmbracelet/lipgloss"

// Dark palette matching the planner's default theme
var (
	Primary   = lipgloss.Color("#38BDF8")
	Accent    = lipgloss.Color("#A78BFA")
	Text      = lipgloss.Color("#E2E8F0")
	TextMuted = lipgloss.Color("#64748B")
	Surface   = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
	Warning   = lipgloss.Color("#FBBF24")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	HourLabelStyle = lipgloss.NewStyle().
			Width(7).
			Foreground(TextMuted)

	HourLabelActiveStyle = lipgloss.NewStyle().
				Width(7).
				Bold(true).
				Foreground(Primary)

	TaskStyle = lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1)

	TaskSelectedStyle = lipgloss.NewStyle().
				Foreground(Text).
				Background(Surface).
				Bold(true).
				Padding(0, 1)

	DurationStyle = lipgloss.NewStyle().
			Foreground(Accent)

	EmptySlotStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	MessageStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)
