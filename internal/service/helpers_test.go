package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }

// env bundles a test database with the repos and services built on it.
type env struct {
	db      *sql.DB
	courses repository.CourseRepo
	tasks   repository.TaskRepo
	plans   repository.PlanRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &env{
		db:      database,
		courses: repository.NewSQLiteCourseRepo(database),
		tasks:   repository.NewSQLiteTaskRepo(database),
		plans:   repository.NewSQLitePlanRepo(database),
	}
}

func (e *env) seedCourse(t *testing.T, name string) *domain.Course {
	t.Helper()
	c := testutil.NewTestCourse(name)
	require.NoError(t, e.courses.Create(context.Background(), c))
	return c
}

func (e *env) seedTask(t *testing.T, courseID, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(courseID, title, opts...)
	require.NoError(t, e.tasks.Create(context.Background(), task))
	return task
}

func requireCode(t *testing.T, err error, code app.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, app.CodeOf(err), "error: %v", err)
}

// captureObserver records use-case events.
type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *captureObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// stubEnhancer rewrites the summary, or panics when asked to.
type stubEnhancer struct {
	calls int
	panic bool
}

func (s *stubEnhancer) Enhance(_ context.Context, plan *domain.GeneratedPlan) (*domain.GeneratedPlan, bool) {
	s.calls++
	if s.panic {
		panic("enhancer exploded")
	}
	out := plan.Clone()
	out.Summary += "\n\nAI insights: stay hydrated"
	return out, true
}
