package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// ConvertedCourse is an import schema turned into domain values.
type ConvertedCourse struct {
	Course *domain.Course
	Tasks  []*domain.Task
}

// Convert transforms a validated ImportSchema into domain objects owned by
// userID and ready for persistence. Call ValidateImportSchema first; Convert
// assumes the schema is valid.
func Convert(schema *ImportSchema, userID string) (*ConvertedCourse, error) {
	now := time.Now().UTC().Truncate(time.Second)

	course := &domain.Course{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               strings.TrimSpace(schema.Course.Name),
		Code:               strings.TrimSpace(schema.Course.Code),
		Color:              schema.Course.Color,
		TargetHoursPerWeek: schema.Course.TargetHoursPerWeek,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for i, ti := range schema.Tasks {
		due, err := optionalDueDate(ti.DueDate)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d].due_date: %w", i, err)
		}

		// Task field > schema defaults > hardcoded
		taskType := domain.CoalesceStr(ti.Type, defaultType(schema.Defaults), string(domain.TaskOther))
		priority := domain.ParsePriority(domain.CoalesceStr(ti.Priority, defaultPriority(schema.Defaults)))
		status := domain.TaskStatus(domain.CoalesceStr(ti.Status, string(domain.TaskTodo)))

		task := &domain.Task{
			ID:             uuid.New().String(),
			UserID:         userID,
			CourseID:       course.ID,
			CourseName:     course.Name,
			Title:          strings.TrimSpace(ti.Title),
			Description:    ti.Description,
			Type:           domain.TaskType(taskType),
			Status:         status,
			Priority:       priority,
			DueDate:        due,
			EstimatedHours: firstFloat(ti.EstimatedHours, defaultHours(schema.Defaults)),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if status == domain.TaskDone {
			task.CompletedAt = &now
		}
		tasks = append(tasks, task)
	}

	return &ConvertedCourse{Course: course, Tasks: tasks}, nil
}

func optionalDueDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return domain.ParseDueDate(*s)
}

func firstFloat(ptrs ...*float64) *float64 {
	for _, p := range ptrs {
		if p != nil {
			v := *p
			return &v
		}
	}
	return nil
}

func defaultType(d *DefaultsImport) string {
	if d != nil {
		return d.Type
	}
	return ""
}

func defaultPriority(d *DefaultsImport) string {
	if d != nil {
		return d.Priority
	}
	return ""
}

func defaultHours(d *DefaultsImport) *float64 {
	if d != nil {
		return d.EstimatedHours
	}
	return nil
}
