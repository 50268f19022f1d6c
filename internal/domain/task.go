package domain

import (
	"fmt"
	"strings"
	"time"
)

// UnknownCourse groups tasks that arrive without a course reference.
const UnknownCourse = "Unknown"

type Task struct {
	ID       string
	UserID   string
	CourseID string
	// CourseName is display-only: joined from courses or supplied by a caller.
	CourseName  string
	Title       string
	Description string
	Type        TaskType
	Status      TaskStatus
	Priority    Priority

	DueDate        *time.Time
	EstimatedHours *float64

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// CourseKey returns the identifier tasks are grouped by.
func (t *Task) CourseKey() string {
	if strings.TrimSpace(t.CourseID) == "" {
		return UnknownCourse
	}
	return t.CourseID
}

// CourseLabel returns the name shown for the task's course.
func (t *Task) CourseLabel() string {
	return CoalesceStr(t.CourseName, t.CourseKey())
}

// Validate checks the fields a task must carry before it is stored.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if strings.TrimSpace(t.CourseID) == "" {
		return fmt.Errorf("task course is required")
	}
	if t.Type != "" && !ValidTaskTypes[string(t.Type)] {
		return fmt.Errorf("invalid task type %q", t.Type)
	}
	if t.Status != "" && !ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must not be negative")
	}
	return nil
}

// MarkDone transitions the task to done, stamping CompletedAt.
func (t *Task) MarkDone(now time.Time) {
	t.Status = TaskDone
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// ParseDueDate accepts a calendar date (2006-01-02, read as UTC midnight) or
// an RFC3339 timestamp. A blank string yields nil.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return &d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a date (YYYY-MM-DD) or RFC3339 timestamp", s)
	}
	d = d.UTC()
	return &d, nil
}
