package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorEnabled is resolved once: colors are dropped when stdout is not a
// terminal (pipes, CI capture).
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Green styles text for staged entries and success messages
func Green(text string) string { return render(greenStyle, text) }

// Yellow styles text for unstaged entries and warnings
func Yellow(text string) string { return render(yellowStyle, text) }

// Red styles text for untracked entries and errors
func Red(text string) string { return render(redStyle, text) }

// Cyan styles branch names
func Cyan(text string) string { return render(cyanStyle, text) }

// Gray styles secondary detail such as hashes and dates
func Gray(text string) string { return render(grayStyle, text) }

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(name string, isCurrent bool) string {
	if isCurrent {
		return Cyan("* " + name)
	}
	return "  " + name
}
