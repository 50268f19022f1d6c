package domain

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriorities is the canonical set of accepted priority labels.
var ValidPriorities = map[string]bool{
	"low": true, "normal": true, "medium": true, "high": true, "urgent": true,
}

// ParsePriority normalizes a priority label. Matching is case-insensitive;
// empty or unknown labels become PriorityNormal.
func ParsePriority(s string) Priority {
	p := strings.ToLower(strings.TrimSpace(s))
	if ValidPriorities[p] {
		return Priority(p)
	}
	return PriorityNormal
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"todo": true, "in_progress": true, "done": true,
}

type TaskType string

const (
	TaskHomework TaskType = "homework"
	TaskReading  TaskType = "reading"
	TaskExam     TaskType = "exam"
	TaskProject  TaskType = "project"
	TaskOther    TaskType = "other"
)

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[string]bool{
	"homework": true, "reading": true, "exam": true, "project": true, "other": true,
}

// Weekdays lists the days a plan can fill, in calendar order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
