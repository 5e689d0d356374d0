// Package studyplan derives the fixed 7-day study schedule for a pack.
// Task identifiers and minute values depend only on the day index, so
// the plan needs no seeding to be reproducible.
package studyplan

import (
	"fmt"

	"github.com/notetoquiz/notepack/internal/notes"
)

// Days in every plan, one canonical focus task per day.
var focusTasks = [7]string{
	"Review the summary and highlight key terms",
	"Answer 5 quiz questions and check mistakes",
	"Drill flashcards for 10 minutes",
	"Rewrite tricky concepts in your own words",
	"Take a full practice quiz and score it",
	"Teach a friend or record a 2-minute recap",
	"Final review + quick self-test",
}

// Task is one checkable plan item.
type Task struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Minutes int    `json:"minutes"`
}

// Day is one plan day with its time estimate and tasks.
type Day struct {
	Day          int    `json:"day"`
	Title        string `json:"title"`
	TimeEstimate string `json:"timeEstimate"`
	Tasks        []Task `json:"tasks"`
}

// Plan is the full day-by-day schedule.
type Plan struct {
	Days []Day `json:"days"`
}

// Build creates the plan. The top keyword names the keyword-review
// task; everything else is fixed. Time estimates grow linearly, and
// even day indices get an extra spaced-recall task.
func Build(keywords []string) Plan {
	topic := "this unit"
	if len(keywords) > 0 {
		topic = keywords[0]
	}
	topic = notes.Capitalize(topic)

	days := make([]Day, 0, len(focusTasks))
	for i, focus := range focusTasks {
		minutes := 25 + i*5
		tasks := []Task{
			{ID: fmt.Sprintf("%d-a", i), Text: focus, Minutes: minutes},
			{
				ID:      fmt.Sprintf("%d-b", i),
				Text:    fmt.Sprintf("Review %s keywords (%d min)", topic, 10+i*2),
				Minutes: 10 + i*2,
			},
			{ID: fmt.Sprintf("%d-c", i), Text: "Reflect on what felt hardest", Minutes: 5 + i},
		}
		if i%2 == 0 {
			tasks = append(tasks, Task{
				ID:      fmt.Sprintf("%d-d", i),
				Text:    "Schedule a spaced recall check",
				Minutes: 8,
			})
		}

		days = append(days, Day{
			Day:          i + 1,
			Title:        fmt.Sprintf("Day %d", i+1),
			TimeEstimate: fmt.Sprintf("%d min", minutes),
			Tasks:        tasks,
		})
	}

	return Plan{Days: days}
}

// TotalTasks counts every task in the plan.
func (p Plan) TotalTasks() int {
	n := 0
	for _, day := range p.Days {
		n += len(day.Tasks)
	}
	return n
}
