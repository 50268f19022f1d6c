package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

var priorityBase = map[domain.Priority]int{
	domain.PriorityUrgent: 40,
	domain.PriorityHigh:   30,
	domain.PriorityMedium: 20,
	domain.PriorityNormal: 15,
	domain.PriorityLow:    10,
}

// PriorityBase returns the base urgency for a priority label. Unknown labels
// score as normal.
func PriorityBase(p domain.Priority) int {
	if base, ok := priorityBase[domain.ParsePriority(string(p))]; ok {
		return base
	}
	return priorityBase[domain.PriorityNormal]
}

// DaysUntil returns whole calendar days from now to due, rounding up.
func DaysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// DueDateBoost returns the urgency bonus for a due date. Past, today and
// tomorrow share the largest boost.
func DueDateBoost(due *time.Time, now time.Time) int {
	if due == nil {
		return 0
	}
	days := DaysUntil(*due, now)
	switch {
	case days <= 1:
		return 50
	case days <= 3:
		return 30
	case days <= 7:
		return 15
	default:
		return 0
	}
}

// ScoreTask combines priority and due-date proximity. Higher is more urgent.
func ScoreTask(task domain.Task, now time.Time) int {
	return PriorityBase(task.Priority) + DueDateBoost(task.DueDate, now)
}
