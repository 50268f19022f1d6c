package app

import "github.com/alexanderramin/studyplan/internal/domain"

type CourseInput struct {
	Name               string   `json:"name" validate:"notblank,max=120"`
	Code               string   `json:"code" validate:"max=32"`
	Color              string   `json:"color" validate:"omitempty,hexcolor,len=7"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week" validate:"omitempty,gte=0,lte=168"`
}

// CoursePatch updates only the fields that are set.
type CoursePatch struct {
	Name               *string  `json:"name" validate:"omitempty,notblank,max=120"`
	Code               *string  `json:"code" validate:"omitempty,max=32"`
	Color              *string  `json:"color" validate:"omitempty,hexcolor,len=7"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week" validate:"omitempty,gte=0,lte=168"`
}

type TaskInput struct {
	CourseID       string   `json:"course_id" validate:"notblank"`
	Title          string   `json:"title" validate:"notblank,max=200"`
	Description    string   `json:"description" validate:"max=2000"`
	Type           string   `json:"type" validate:"omitempty,oneof=homework reading exam project other"`
	Status         string   `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low normal medium high urgent"`
	DueDate        string   `json:"due_date" validate:"omitempty,duedate"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
}

// TaskPatch updates only the fields that are set. ClearDueDate removes an
// existing due date.
type TaskPatch struct {
	CourseID       *string  `json:"course_id" validate:"omitempty,notblank"`
	Title          *string  `json:"title" validate:"omitempty,notblank,max=200"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	Type           *string  `json:"type" validate:"omitempty,oneof=homework reading exam project other"`
	Status         *string  `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority       *string  `json:"priority" validate:"omitempty,oneof=low normal medium high urgent"`
	DueDate        *string  `json:"due_date" validate:"omitempty,duedate"`
	ClearDueDate   bool     `json:"clear_due_date"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
}

// TaskListFilter narrows task listings. Zero values match everything.
type TaskListFilter struct {
	CourseID string
	Status   domain.TaskStatus
}

// CourseDeleteResult reports what a course deletion removed.
type CourseDeleteResult struct {
	CourseID     string `json:"course_id"`
	TasksDeleted int64  `json:"tasks_deleted"`
}
