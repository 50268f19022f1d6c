package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks   repository.TaskRepo
	courses repository.CourseRepo
}

func NewTaskService(tasks repository.TaskRepo, courses repository.CourseRepo) app.TaskUseCase {
	return &taskService{tasks: tasks, courses: courses}
}

func (s *taskService) Create(ctx context.Context, userID string, in app.TaskInput) (*domain.Task, error) {
	if err := app.ValidateStruct(in); err != nil {
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, userID, strings.TrimSpace(in.CourseID))
	if err != nil {
		return nil, notFoundAs("course", err)
	}
	due, err := domain.ParseDueDate(in.DueDate)
	if err != nil {
		return nil, app.InvalidInput("due_date: %v", err)
	}

	now := nowUTC()
	t := &domain.Task{
		ID:             uuid.New().String(),
		UserID:         userID,
		CourseID:       course.ID,
		CourseName:     course.Name,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Type:           domain.TaskType(domain.CoalesceStr(in.Type, string(domain.TaskOther))),
		Status:         domain.TaskStatus(domain.CoalesceStr(in.Status, string(domain.TaskTodo))),
		Priority:       domain.ParsePriority(in.Priority),
		DueDate:        due,
		EstimatedHours: in.EstimatedHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.Status == domain.TaskDone {
		t.CompletedAt = &now
	}
	if err := t.Validate(); err != nil {
		return nil, app.InvalidInput("%s", err.Error())
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, notFoundAs("task", err)
	}
	return t, nil
}

func (s *taskService) List(ctx context.Context, userID string, filter app.TaskListFilter) ([]*domain.Task, error) {
	if filter.Status != "" && !domain.ValidTaskStatuses[string(filter.Status)] {
		return nil, app.InvalidInput("invalid status filter %q", filter.Status)
	}
	return s.tasks.ListByUser(ctx, userID, repository.TaskFilter{
		CourseID: filter.CourseID,
		Status:   filter.Status,
	})
}

func (s *taskService) Update(ctx context.Context, userID, id string, patch app.TaskPatch) (*domain.Task, error) {
	if err := app.ValidateStruct(patch); err != nil {
		return nil, err
	}
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.CourseID != nil && strings.TrimSpace(*patch.CourseID) != t.CourseID {
		course, err := s.courses.GetByID(ctx, userID, strings.TrimSpace(*patch.CourseID))
		if err != nil {
			return nil, notFoundAs("course", err)
		}
		t.CourseID = course.ID
		t.CourseName = course.Name
	}
	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Type != nil {
		t.Type = domain.TaskType(*patch.Type)
	}
	if patch.Priority != nil {
		t.Priority = domain.ParsePriority(*patch.Priority)
	}
	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		if t.DueDate, err = domain.ParseDueDate(*patch.DueDate); err != nil {
			return nil, app.InvalidInput("due_date: %v", err)
		}
	}
	if patch.EstimatedHours != nil {
		t.EstimatedHours = patch.EstimatedHours
	}

	now := nowUTC()
	t.UpdatedAt = now
	if patch.Status != nil {
		switch status := domain.TaskStatus(*patch.Status); {
		case status == domain.TaskDone && t.Status != domain.TaskDone:
			t.MarkDone(now)
		case status != domain.TaskDone:
			t.Status = status
			t.CompletedAt = nil
		}
	}

	if err := t.Validate(); err != nil {
		return nil, app.InvalidInput("%s", err.Error())
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, notFoundAs("task", err)
	}
	return t, nil
}

func (s *taskService) MarkDone(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if t.Status == domain.TaskDone {
		return t, nil
	}
	t.MarkDone(nowUTC())
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, notFoundAs("task", err)
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	return notFoundAs("task", s.tasks.Delete(ctx, userID, id))
}
