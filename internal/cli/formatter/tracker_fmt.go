package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/epeat/internal/contract"
)

const trackerBarWidth = 24

// FormatTrackerHeader renders readiness and overall progress.
func FormatTrackerHeader(res contract.TrackerResult) string {
	var b strings.Builder
	b.WriteString(ReadinessIndicator(res.Readiness))
	b.WriteString("\n")
	b.WriteString(RenderProgress(res.Percent, trackerBarWidth))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d required items complete", res.Completed, res.TotalRequired)))
	b.WriteString("\n")
	return b.String()
}

// SectionCount renders "(done/total)" for a section header.
func SectionCount(sp contract.SectionProgress) string {
	text := fmt.Sprintf("(%d/%d)", sp.Completed, sp.Total)
	if sp.Total > 0 && sp.Completed == sp.Total {
		return StyleGreen.Render(text)
	}
	return Dim(text)
}

// FormatTracker renders a tracker result as a boxed summary.
func FormatTracker(res contract.TrackerResult) string {
	var b strings.Builder
	b.WriteString(FormatTrackerHeader(res))
	b.WriteString("\n")

	rows := make([][]string, 0, len(res.Sections))
	for _, sp := range res.Sections {
		rows = append(rows, []string{sp.Title, SectionCount(sp)})
	}
	b.WriteString(RenderTable([]string{"SECTION", "COMPLETE"}, rows))

	return RenderBox("Assessment Tracker", b.String())
}
