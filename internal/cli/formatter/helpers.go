package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/alexanderramin/epeat/internal/scoring"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Percent formats a 0–100 score rounded half away from zero, e.g. "67%".
func Percent(v float64) string {
	return fmt.Sprintf("%d%%", int(scoring.Round(v)))
}

// StatusStyle returns the color of a response status.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusComplete:
		return StyleGreen
	case domain.StatusPartial:
		return StyleYellow
	case domain.StatusNotStarted:
		return StyleRed
	default:
		return StyleDim
	}
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusComplete:
		return "✔"
	case domain.StatusPartial:
		return "◐"
	case domain.StatusNotStarted:
		return "○"
	case domain.StatusNotApplicable:
		return "⊘"
	default:
		return "·"
	}
}

// StatusPill returns a colored documentation status such as "◐ Partial".
// An empty status renders as unanswered.
func StatusPill(s domain.Status) string {
	if s == "" {
		return Dim("· Unanswered")
	}
	return StatusStyle(s).Render(statusIcon(s) + " " + s.Label())
}

// TrackerStatusPill is StatusPill with the tracker's labels.
func TrackerStatusPill(s domain.Status) string {
	if s == "" {
		return Dim("· Not set")
	}
	return StatusStyle(s).Render(statusIcon(s) + " " + s.TrackerLabel())
}

// RatingBadge renders a rating as "3/5 Mostly Implemented".
func RatingBadge(r domain.Rating) string {
	style := StyleRed
	switch {
	case r >= 4:
		style = StyleGreen
	case r >= 2:
		style = StyleYellow
	}
	return style.Render(fmt.Sprintf("%d/%d", r, domain.MaxRating)) + " " + Dim(r.Title())
}

// RequiredMarker is appended to items that must be completed.
func RequiredMarker() string {
	return StyleRed.Render("*Required")
}

// wrapText wraps text at word boundaries to the given width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(text)
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) <= width {
				current += " " + word
				continue
			}
			out = append(out, current)
			current = word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}

// indent prefixes every non-empty line of text with n spaces.
func indent(text string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
