package app

import (
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

const (
	MsgNoTasks            = "No tasks provided. Please add tasks before generating a plan."
	MsgInvalidTasks       = "Invalid tasks format. Expected an array of tasks."
	MsgInvalidPreferences = "Invalid preferences format. Expected an object with study preferences."
	MsgInvalidDailyHours  = "Invalid daily hours preference. Must be greater than 0."
	MsgGenerationFailed   = "Failed to generate study plan. Please try again."
)

// PlanTaskInput is one task as submitted for scheduling. Unknown priority
// labels are scheduled as normal.
type PlanTaskInput struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	CourseID       string   `json:"course_id"`
	CourseName     string   `json:"course_name,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Priority       string   `json:"priority,omitempty"`
}

type StudyPreferences struct {
	DailyHours float64 `json:"dailyHours"`
}

type GeneratePlanRequest struct {
	Tasks       []PlanTaskInput   `json:"tasks"`
	Preferences *StudyPreferences `json:"preferences"`
	// UseAI gates enhancement; nil means true.
	UseAI *bool `json:"useAI,omitempty"`
	// Now pins the clock for due-date scoring; nil means time.Now.
	Now *time.Time `json:"-"`
}

// WantsAI reports whether the caller allows enhancement.
func (r GeneratePlanRequest) WantsAI() bool {
	return r.UseAI == nil || *r.UseAI
}

type GeneratePlanResponse struct {
	Plan     *domain.GeneratedPlan `json:"plan"`
	Enhanced bool                  `json:"enhanced"`
	// Unassigned lists titles of tasks that did not fit into the week.
	Unassigned []string `json:"unassigned,omitempty"`
	// SavedPlanID is set when the plan was persisted.
	SavedPlanID string `json:"savedPlanId,omitempty"`
}

// ValidatedPlanRequest is a GeneratePlanRequest that passed validation, with
// tasks converted to domain values.
type ValidatedPlanRequest struct {
	Tasks      []domain.Task
	DailyHours float64
	UseAI      bool
	Now        time.Time
}

// ValidateGeneratePlanRequest checks a request in the order the checks are
// reported to callers: tasks present, required fields, preferences, daily
// hours, then due dates. The first failure is returned.
func ValidateGeneratePlanRequest(req GeneratePlanRequest) (*ValidatedPlanRequest, error) {
	if len(req.Tasks) == 0 {
		return nil, InvalidInput("%s", MsgNoTasks)
	}

	missing := 0
	for _, t := range req.Tasks {
		if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.CourseID) == "" {
			missing++
		}
	}
	if missing > 0 {
		return nil, InvalidInput("%d task(s) missing required fields (title, course_id)", missing)
	}

	if req.Preferences == nil {
		return nil, InvalidInput("%s", MsgInvalidPreferences)
	}
	if !(req.Preferences.DailyHours > 0) {
		return nil, InvalidInput("%s", MsgInvalidDailyHours)
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	tasks := make([]domain.Task, 0, len(req.Tasks))
	for _, in := range req.Tasks {
		due, err := domain.ParseDueDate(in.DueDate)
		if err != nil {
			return nil, InvalidInput("Invalid due_date for task %q: %v", in.Title, err)
		}
		tasks = append(tasks, domain.Task{
			ID:             in.ID,
			CourseID:       strings.TrimSpace(in.CourseID),
			CourseName:     strings.TrimSpace(in.CourseName),
			Title:          strings.TrimSpace(in.Title),
			Priority:       domain.ParsePriority(in.Priority),
			DueDate:        due,
			EstimatedHours: in.EstimatedHours,
			Status:         domain.TaskTodo,
		})
	}

	return &ValidatedPlanRequest{
		Tasks:      tasks,
		DailyHours: req.Preferences.DailyHours,
		UseAI:      req.WantsAI(),
		Now:        now,
	}, nil
}

// GenerateForUserRequest schedules a user's stored, unfinished tasks.
type GenerateForUserRequest struct {
	UserID      string            `json:"-"`
	Preferences *StudyPreferences `json:"preferences"`
	UseAI       *bool             `json:"useAI,omitempty"`
	Save        bool              `json:"save,omitempty"`
	Title       string            `json:"title,omitempty" validate:"max=200"`
	Now         *time.Time        `json:"-"`
}

type SavePlanInput struct {
	Title string                `json:"title" validate:"max=200"`
	Plan  *domain.GeneratedPlan `json:"plan" validate:"required"`
}
