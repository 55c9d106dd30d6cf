package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles for CLI output.
var Theme = struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeSuccess lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeInfo    lipgloss.Style

	ListBullet lipgloss.Style
	ListItem   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Success: lipgloss.NewStyle().
		Foreground(ColorSuccess),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	BadgeSuccess: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorSuccess).
		Padding(0, 1),

	BadgeError: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorError).
		Padding(0, 1),

	BadgeInfo: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorInfo).
		Padding(0, 1),

	ListBullet: lipgloss.NewStyle().
		Foreground(ColorPrimary),

	ListItem: lipgloss.NewStyle().
		Foreground(ColorText),
}

// RenderListItem returns a formatted list item with bullet.
func RenderListItem(item string) string {
	return Theme.ListBullet.Render(IconBullet) + " " + Theme.ListItem.Render(item)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderSuccess returns a styled success message.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns a styled info message.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}

// RenderMeta returns a bold label followed by a muted value.
func RenderMeta(label, value string) string {
	return Theme.Bold.Render(label) + " " + Theme.Muted.Render(value)
}

// RenderBadge returns a styled badge for a container state.
func RenderBadge(state string) string {
	switch state {
	case "running":
		return Theme.BadgeSuccess.Render(state)
	case "exited", "dead", "stopped", "absent":
		return Theme.BadgeError.Render(state)
	default:
		return Theme.BadgeInfo.Render(state)
	}
}
