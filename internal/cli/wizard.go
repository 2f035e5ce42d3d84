package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epeat/internal/cli/formatter"
	"github.com/alexanderramin/epeat/internal/domain"
)

// epeatHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func epeatHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectStatus builds a form choosing one of statuses for an item.
// label renders each option; *result preselects the current answer.
func wizardSelectStatus(item domain.Item, statuses []domain.Status, label func(domain.Status) string, result *domain.Status) *huh.Form {
	options := make([]huh.Option[domain.Status], 0, len(statuses))
	for _, s := range statuses {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  (%s)", label(s), s.Description()), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Status]().
				Title(item.Name).
				Description(item.Description).
				Options(options...).
				Value(result),
		),
	).WithTheme(epeatHuhTheme()).WithShowHelp(false)
}

// wizardSelectRating builds a form choosing a 0–5 rating for a practice area.
func wizardSelectRating(item domain.Item, result *domain.Rating) *huh.Form {
	options := make([]huh.Option[domain.Rating], 0, len(domain.RatingLevels()))
	for _, l := range domain.RatingLevels() {
		options = append(options, huh.NewOption(fmt.Sprintf("%d  %s", l.Rating, l.Title), l.Rating))
	}

	desc := item.Description
	if item.Example != "" {
		desc += "\nExample: " + item.Example
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Rating]().
				Title(item.Name).
				Description(desc).
				Options(options...).
				Value(result),
		),
	).WithTheme(epeatHuhTheme()).WithShowHelp(false)
}
