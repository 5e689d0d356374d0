package export

import (
	"fmt"
	"strings"

	"github.com/notetoquiz/notepack/internal/studyplan"
	"github.com/notetoquiz/notepack/internal/summary"
)

// SummaryMarkdown renders the summary as Markdown: a level-2 heading
// per section followed by its bullets.
func SummaryMarkdown(s summary.Summary) string {
	blocks := make([]string, 0, len(s.Sections))
	for _, section := range s.Sections {
		var b strings.Builder
		fmt.Fprintf(&b, "## %s\n", section.Title)
		for i, bullet := range section.Bullets {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "- %s", bullet)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// PlanMarkdown renders the study plan as Markdown: a level-3 heading
// per day with a task checklist.
func PlanMarkdown(p studyplan.Plan) string {
	blocks := make([]string, 0, len(p.Days))
	for _, day := range p.Days {
		var b strings.Builder
		fmt.Fprintf(&b, "### %s (%s)\n", day.Title, day.TimeEstimate)
		for i, task := range day.Tasks {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "- [ ] %s (%d min)", task.Text, task.Minutes)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
