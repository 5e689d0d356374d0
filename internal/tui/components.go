package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// choiceList renders MCQ options with a cursor and, after submission,
// correct/incorrect highlighting.
type choiceList struct {
	Choices      []string
	CorrectIndex int
	Cursor       int
	Submitted    bool
	Chosen       int
}

func newChoiceList(choices []string, correctIndex int) choiceList {
	return choiceList{
		Choices:      choices,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Move adjusts the cursor by delta, clamped to the option range.
func (c *choiceList) Move(delta int) {
	if c.Submitted {
		return
	}
	c.Cursor += delta
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	if c.Cursor > len(c.Choices)-1 {
		c.Cursor = len(c.Choices) - 1
	}
}

// Submit locks in the current cursor position.
func (c *choiceList) Submit() {
	c.Submitted = true
	c.Chosen = c.Cursor
}

func (c choiceList) View() string {
	var b strings.Builder
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%c) %s", prefix, 'A'+i, choice)

		switch {
		case c.Submitted && i == c.CorrectIndex:
			b.WriteString(correctStyle.Render(line))
		case c.Submitted && i == c.Chosen:
			b.WriteString(incorrectStyle.Render(line))
		case !c.Submitted && i == c.Cursor:
			b.WriteString(lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(colorText).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// progressLine renders a minimal "n/total" bar for the session header.
func progressLine(current, total, width int) string {
	if total == 0 {
		return ""
	}
	barWidth := width - 10
	if barWidth < 4 {
		barWidth = 4
	}
	filled := barWidth * current / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return hintStyle.Render(fmt.Sprintf("%s %d/%d", bar, current, total))
}
