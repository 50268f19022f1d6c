package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// GroupByCourse turns one day's tasks into study blocks, one per course, in
// order of first appearance. Block duration is the summed effort, clamped to
// dailyHours. Notes describe the group's size and the first task's priority.
func GroupByCourse(dayTasks []domain.Task, dailyHours float64, policy Policy) []domain.PlanBlock {
	policy = policy.withDefaults()

	var order []string
	groups := make(map[string][]domain.Task)
	for _, t := range dayTasks {
		key := t.CourseKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}

	blocks := make([]domain.PlanBlock, 0, len(order))
	for _, key := range order {
		tasks := groups[key]
		titles := make([]string, len(tasks))
		var hours float64
		for i, t := range tasks {
			titles[i] = t.Title
			hours += Effort(t, policy)
		}
		first := tasks[0]
		blocks = append(blocks, domain.PlanBlock{
			Course:        first.CourseLabel(),
			Tasks:         titles,
			DurationHours: math.Min(dailyHours, hours),
			Notes: fmt.Sprintf("%d task(s) | Priority: %s",
				len(tasks), domain.CoalesceStr(string(first.Priority), string(domain.PriorityNormal))),
		})
	}
	return blocks
}
