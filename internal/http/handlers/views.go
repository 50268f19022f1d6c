package handlers

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

const dateLayout = time.DateOnly

type courseView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Code               string    `json:"code,omitempty"`
	Color              string    `json:"color,omitempty"`
	TargetHoursPerWeek *float64  `json:"target_hours_per_week,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newCourseView(c *domain.Course) courseView {
	return courseView{
		ID:                 c.ID,
		Name:               c.Name,
		Code:               c.Code,
		Color:              c.Color,
		TargetHoursPerWeek: c.TargetHoursPerWeek,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func newCourseViews(cs []*domain.Course) []courseView {
	out := make([]courseView, 0, len(cs))
	for _, c := range cs {
		out = append(out, newCourseView(c))
	}
	return out
}

type taskView struct {
	ID             string     `json:"id"`
	CourseID       string     `json:"course_id"`
	CourseName     string     `json:"course_name,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        string     `json:"due_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func newTaskView(t *domain.Task) taskView {
	v := taskView{
		ID:             t.ID,
		CourseID:       t.CourseID,
		CourseName:     t.CourseName,
		Title:          t.Title,
		Description:    t.Description,
		Type:           string(t.Type),
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		EstimatedHours: t.EstimatedHours,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		CompletedAt:    t.CompletedAt,
	}
	if t.DueDate != nil {
		v.DueDate = t.DueDate.Format(dateLayout)
	}
	return v
}

func newTaskViews(ts []*domain.Task) []taskView {
	out := make([]taskView, 0, len(ts))
	for _, t := range ts {
		out = append(out, newTaskView(t))
	}
	return out
}

type savedPlanView struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Plan      domain.GeneratedPlan `json:"plan"`
	CreatedAt time.Time            `json:"created_at"`
}

func newSavedPlanView(p *domain.SavedPlan) savedPlanView {
	return savedPlanView{ID: p.ID, Title: p.Title, Plan: p.Plan, CreatedAt: p.CreatedAt}
}
