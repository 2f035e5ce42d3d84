package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/epeat/internal/domain"
)

const guideWrapWidth = 72

// FormatCatalog renders a checklist catalog as a tree of sections and
// items, each item tagged with the key used in answers files.
func FormatCatalog(c domain.Catalog) string {
	var items []TreeItem
	for _, s := range c.Sections {
		items = append(items, TreeItem{
			Title:  Bold(s.Title),
			Detail: fmt.Sprintf("%d items", len(s.Items)),
		})
		for i, it := range s.Items {
			ti := TreeItem{
				Title:  it.Name,
				Level:  1,
				IsLast: i == len(s.Items)-1,
				Detail: string(c.KeyOf(s, i)),
			}
			if it.Required {
				ti.Marker = RequiredMarker()
			}
			items = append(items, ti)
		}
	}

	var b strings.Builder
	b.WriteString(Header(c.Name))
	b.WriteString("\n")
	b.WriteString(RenderTree(items))
	b.WriteString(Dim(fmt.Sprintf("%d items, %d required", c.ItemCount(), c.RequiredCount())))
	b.WriteString("\n")
	return b.String()
}

// FormatRisks renders the selectable critical risks.
func FormatRisks(risks []domain.Risk) string {
	rows := make([][]string, 0, len(risks))
	for _, r := range risks {
		rows = append(rows, []string{r.Label, Dim(r.ID)})
	}
	return Header("Critical Risks") + "\n" + RenderTable([]string{"RISK", "ID"}, rows)
}

// FormatGuide renders the self-rating scale guide.
func FormatGuide(levels []domain.RatingLevel) string {
	var b strings.Builder
	for i, l := range levels {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RatingBadge(l.Rating))
		b.WriteString("\n")
		for _, p := range l.Points {
			b.WriteString(indent(wrapText("• "+p, guideWrapWidth), 2))
			b.WriteString("\n")
		}
	}
	return RenderBox("Self-Rating Guide", b.String())
}

// FormatStatusGuide lists the documentation statuses with their hints.
func FormatStatusGuide(statuses []domain.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, []string{StatusPill(s), Dim(s.Description()), Dim(string(s))})
	}
	return RenderTable([]string{"STATUS", "MEANING", "TOKEN"}, rows)
}
