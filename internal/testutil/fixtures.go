package testutil

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// TestUserID is the owner used by fixtures unless overridden.
const TestUserID = "user-1"

// Course options
type CourseOption func(*domain.Course)

func WithCourseUser(userID string) CourseOption {
	return func(c *domain.Course) {
		c.UserID = userID
	}
}

func WithCode(code string) CourseOption {
	return func(c *domain.Course) {
		c.Code = code
	}
}

func WithColor(color string) CourseOption {
	return func(c *domain.Course) {
		c.Color = color
	}
}

func WithTargetHours(h float64) CourseOption {
	return func(c *domain.Course) {
		c.TargetHoursPerWeek = &h
	}
}

func NewTestCourse(name string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Course{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskUser(userID string) TaskOption {
	return func(t *domain.Task) {
		t.UserID = userID
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = &h
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(courseID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		CourseID:  courseID,
		Title:     title,
		Type:      domain.TaskOther,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestPlan returns a small two-day plan for persistence tests.
func NewTestPlan() domain.GeneratedPlan {
	return domain.GeneratedPlan{
		Days: []domain.PlanDay{
			{Day: "Monday", Blocks: []domain.PlanBlock{
				{Course: "Math", Tasks: []string{"Problem set"}, DurationHours: 1.5, Notes: "1 task(s) | Priority: high"},
			}},
			{Day: "Tuesday", Blocks: []domain.PlanBlock{
				{Course: "Biology", Tasks: []string{"Lab report"}, DurationHours: 2, Notes: "1 task(s) | Priority: normal"},
			}},
		},
		Summary:         "Two days of study.",
		DayDescriptions: map[string]string{"Monday": "Math day.", "Tuesday": "Biology day."},
		StudyTips:       []string{"Take breaks."},
	}
}
