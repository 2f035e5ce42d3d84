package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/epeat/internal/scoring"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar fills at 100 but the label shows the real percentage, which
// can exceed 100. Color follows the tracker readiness thresholds.
func RenderProgress(pct int, width int) string {
	style := ReadinessStyle(scoring.ReadinessFor(pct))
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(pct, width, style), pct)
}

// RenderCompactBar renders only the colored blocks of a progress bar.
func RenderCompactBar(pct int, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	fill := min(max(pct, 0), 100)
	filled := fill * width / 100
	return style.Render(strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled))
}

// ScoreStyle colors a 0–100 score by the decision thresholds.
func ScoreStyle(v float64) lipgloss.Style {
	switch {
	case v >= scoring.GoOverallMin:
		return StyleGreen
	case v >= scoring.DeferOverallMin:
		return StyleYellow
	default:
		return StyleRed
	}
}
