package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epeat/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DecisionStyle returns the color associated with a recommendation.
func DecisionStyle(d domain.Decision) lipgloss.Style {
	switch d {
	case domain.DecisionGo:
		return StyleGreen
	case domain.DecisionDefer:
		return StyleYellow
	case domain.DecisionNoGo:
		return StyleRed
	default:
		return StyleDim
	}
}

// DecisionIcon returns the glyph shown next to a recommendation.
func DecisionIcon(d domain.Decision) string {
	switch d {
	case domain.DecisionGo:
		return "✔"
	case domain.DecisionDefer:
		return "▲"
	case domain.DecisionNoGo:
		return "✖"
	default:
		return "?"
	}
}

// DecisionIndicator returns a colored decision such as "✔ GO".
func DecisionIndicator(d domain.Decision) string {
	return DecisionStyle(d).Bold(true).Render(DecisionIcon(d) + " " + string(d))
}

// ReadinessStyle returns the color associated with a tracker readiness.
func ReadinessStyle(r domain.Readiness) lipgloss.Style {
	switch r {
	case domain.ReadinessReady:
		return StyleGreen
	case domain.ReadinessInProgress:
		return StyleYellow
	case domain.ReadinessMoreWork:
		return StyleRed
	default:
		return StyleDim
	}
}

// ReadinessIndicator returns a colored readiness label such as "● In Progress".
func ReadinessIndicator(r domain.Readiness) string {
	return ReadinessStyle(r).Render("● " + r.Text())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
