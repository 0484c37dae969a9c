package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/securepassgen/securepassgen-go/internal/password"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// strengthStyle colors a strength label from red through green.
func strengthStyle(s password.Strength) lipgloss.Style {
	var color string
	switch s {
	case password.VeryWeak:
		color = "1"
	case password.Weak:
		color = "9"
	case password.Fair:
		color = "3"
	case password.Good:
		color = "11"
	case password.Strong:
		color = "10"
	default:
		color = "2"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}
