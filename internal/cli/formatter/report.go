package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/alexanderramin/epeat/internal/contract"
)

const markdownWrapWidth = 80

// FormatReport renders every flow present in r for the terminal.
func FormatReport(r contract.Report) string {
	var parts []string
	if r.Assessment != nil {
		parts = append(parts, FormatAssessment(*r.Assessment))
	}
	if r.Tracker != nil {
		parts = append(parts, FormatTracker(*r.Tracker))
	}
	return strings.Join(parts, "\n") + "\n"
}

// MarkdownReport renders r as a Markdown document.
func MarkdownReport(r contract.Report) string {
	var b strings.Builder
	b.WriteString("# EPEAT Readiness Report\n")

	if a := r.Assessment; a != nil {
		b.WriteString("\n## Self-Assessment\n\n")
		b.WriteString("| Score | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Documentation | %s |\n", Percent(a.Scores.Documentation))
		fmt.Fprintf(&b, "| Implementation | %s |\n", Percent(a.Scores.Rating))
		fmt.Fprintf(&b, "| **Overall** | **%s** |\n", Percent(a.Scores.Overall))
		fmt.Fprintf(&b, "\n**Decision: %s.** %s\n", a.Decision, a.Explanation)

		if len(a.Gaps) > 0 {
			b.WriteString("\n### Gaps to GO\n\n")
			for _, g := range a.Gaps {
				fmt.Fprintf(&b, "- %s\n", g.Message)
			}
		}

		fmt.Fprintf(&b, "\n### Critical Risks (%d)\n\n", a.RiskCount())
		if a.RiskCount() == 0 {
			b.WriteString("None identified.\n")
		}
		for _, risk := range a.Risks {
			fmt.Fprintf(&b, "- %s\n", risk.Label)
		}

		fmt.Fprintf(&b, "\n_Answered %d/%d documents and %d/%d practice areas._\n",
			a.Answered.Documents, a.Answered.DocumentsTotal, a.Answered.Ratings, a.Answered.RatingsTotal)
	}

	if t := r.Tracker; t != nil {
		b.WriteString("\n## Assessment Tracker\n\n")
		fmt.Fprintf(&b, "**Readiness: %s** (%d%%)\n\n", t.ReadinessText, t.Percent)
		fmt.Fprintf(&b, "%d of %d required items complete.\n\n", t.Completed, t.TotalRequired)
		b.WriteString("| Section | Complete |\n|---|---|\n")
		for _, sp := range t.Sections {
			fmt.Fprintf(&b, "| %s | %d/%d |\n", sp.Title, sp.Completed, sp.Total)
		}
	}

	return b.String()
}

// RenderMarkdown renders md for the terminal. Extra options are applied
// after the defaults, so they can override the style.
func RenderMarkdown(md string, opts ...glamour.TermRendererOption) (string, error) {
	all := append([]glamour.TermRendererOption{
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrapWidth),
	}, opts...)
	r, err := glamour.NewTermRenderer(all...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
