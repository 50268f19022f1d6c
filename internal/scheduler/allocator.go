package scheduler

import "github.com/alexanderramin/studyplan/internal/domain"

// DayAssignment is the ordered set of tasks placed on one weekday.
type DayAssignment struct {
	Day   string
	Tasks []domain.Task
	Hours float64
}

// Allocation is the allocator's output: filled days in calendar order plus the
// tasks that did not fit into the week.
type Allocation struct {
	Days       []DayAssignment
	Unassigned []domain.Task
}

// Effort returns the hours a task is expected to take.
func Effort(task domain.Task, policy Policy) float64 {
	policy = policy.withDefaults()
	if task.EstimatedHours != nil && *task.EstimatedHours > 0 {
		return *task.EstimatedHours
	}
	return policy.FallbackTaskHours
}

// Allocate fills weekdays in order with sorted tasks until each day's budget is
// spent. Tasks are taken strictly in order: when the next task does not fit, the
// day closes and the task moves to the next day. A task larger than the whole
// budget gets a day to itself. Tasks left after Sunday are returned as
// Unassigned.
func Allocate(sorted []ScoredTask, dailyHours float64, policy Policy) Allocation {
	policy = policy.withDefaults()
	var out Allocation
	next := 0

	for _, day := range domain.Weekdays {
		if next >= len(sorted) {
			break
		}
		hoursLeft := dailyHours
		var assigned []domain.Task

		for hoursLeft > policy.MinRemainingHours && next < len(sorted) {
			task := sorted[next].Task
			effort := Effort(task, policy)

			fits := effort <= hoursLeft+hoursEpsilon || effort < policy.MinRemainingHours
			oversized := len(assigned) == 0 && effort > dailyHours
			if !fits && !oversized {
				break
			}
			if oversized {
				effort = hoursLeft
			}

			assigned = append(assigned, task)
			hoursLeft -= effort
			next++
		}

		if len(assigned) > 0 {
			out.Days = append(out.Days, DayAssignment{
				Day:   day,
				Tasks: assigned,
				Hours: dailyHours - hoursLeft,
			})
		}
	}

	for ; next < len(sorted); next++ {
		out.Unassigned = append(out.Unassigned, sorted[next].Task)
	}
	return out
}
