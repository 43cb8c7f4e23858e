package run

import "github.com/charmbracelet/lipgloss"

var (
	colorOK     = lipgloss.Color("2")  // green
	colorFail   = lipgloss.Color("1")  // red
	colorHeader = lipgloss.Color("12") // bright blue
	colorMuted  = lipgloss.Color("8")  // dim

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK)

	failStyle = lipgloss.NewStyle().
			Foreground(colorFail).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func okMark() string {
	return okStyle.Render("✓")
}

func failMark() string {
	return failStyle.Render("✗")
}
