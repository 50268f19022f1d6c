package repository

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Every read and write is scoped to one user. A row owned by someone else is
// indistinguishable from a missing one.

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, userID, id string) (*domain.Course, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, userID, id string) error
	CountTasks(ctx context.Context, userID, id string) (int, error)
}

// TaskFilter narrows TaskRepo.ListByUser. Zero values match everything.
type TaskFilter struct {
	CourseID string
	Status   domain.TaskStatus
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string, filter TaskFilter) ([]*domain.Task, error)
	// ListSchedulable returns the user's unfinished tasks in creation order.
	ListSchedulable(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, userID, id string) error
	DeleteByCourse(ctx context.Context, userID, courseID string) (int64, error)
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.SavedPlan) error
	GetByID(ctx context.Context, userID, id string) (*domain.SavedPlan, error)
	// ListByUser returns summaries newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.PlanSummary, error)
	Delete(ctx context.Context, userID, id string) error
}
