package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// BuildPlan runs the deterministic pipeline: score, sort, allocate, group and
// describe. The returned plan never contains an empty day.
func BuildPlan(tasks []domain.Task, dailyHours float64, now time.Time, policy Policy) (*domain.GeneratedPlan, Allocation) {
	sorted := SortTasks(tasks, now)
	alloc := Allocate(sorted, dailyHours, policy)

	days := make([]domain.PlanDay, 0, len(alloc.Days))
	for _, a := range alloc.Days {
		blocks := GroupByCourse(a.Tasks, dailyHours, policy)
		if len(blocks) == 0 {
			continue
		}
		days = append(days, domain.PlanDay{Day: a.Day, Blocks: blocks})
	}

	n := Describe(days, len(tasks), dailyHours)
	return &domain.GeneratedPlan{
		Days:            days,
		Summary:         n.Summary,
		DayDescriptions: n.DayDescriptions,
		StudyTips:       n.StudyTips,
	}, alloc
}
