package app

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
)

type CourseUseCase interface {
	Create(ctx context.Context, userID string, in CourseInput) (*domain.Course, error)
	Get(ctx context.Context, userID, id string) (*domain.Course, error)
	List(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, userID, id string, patch CoursePatch) (*domain.Course, error)
	// Delete refuses a course that still has tasks unless force is set.
	Delete(ctx context.Context, userID, id string, force bool) (*CourseDeleteResult, error)
}

type TaskUseCase interface {
	Create(ctx context.Context, userID string, in TaskInput) (*domain.Task, error)
	Get(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, filter TaskListFilter) ([]*domain.Task, error)
	Update(ctx context.Context, userID, id string, patch TaskPatch) (*domain.Task, error)
	MarkDone(ctx context.Context, userID, id string) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type PlanUseCase interface {
	Generate(ctx context.Context, req GeneratePlanRequest) (*GeneratePlanResponse, error)
	GenerateForUser(ctx context.Context, req GenerateForUserRequest) (*GeneratePlanResponse, error)
	Save(ctx context.Context, userID string, in SavePlanInput) (*domain.SavedPlan, error)
	List(ctx context.Context, userID string) ([]domain.PlanSummary, error)
	Get(ctx context.Context, userID, id string) (*domain.SavedPlan, error)
	Delete(ctx context.Context, userID, id string) error
}

type ImportResult struct {
	Course    *domain.Course `json:"course"`
	TaskCount int            `json:"task_count"`
}

type ImportCourseUseCase interface {
	ImportCourse(ctx context.Context, userID, filePath string) (*ImportResult, error)
	ImportCourseFromSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error)
}
