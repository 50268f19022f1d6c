package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseService_CreateAndGet(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, testutil.NewTestUoW(e.db))
	ctx := context.Background()

	c, err := svc.Create(ctx, testutil.TestUserID, app.CourseInput{Name: "  Calculus ", Code: "MATH101", Color: "#83a598", TargetHoursPerWeek: floatPtr(6)})
	require.NoError(t, err)
	assert.Equal(t, "Calculus", c.Name)

	fetched, err := svc.Get(ctx, testutil.TestUserID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "MATH101", fetched.Code)

	_, err = svc.Get(ctx, "someone-else", c.ID)
	requireCode(t, err, app.ErrNotFound)
}

func TestCourseService_CreateRejectsInvalidInput(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, testutil.NewTestUoW(e.db))

	_, err := svc.Create(context.Background(), testutil.TestUserID, app.CourseInput{Name: ""})
	requireCode(t, err, app.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name cannot be blank")
}

func TestCourseService_UpdateAppliesOnlySetFields(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, testutil.NewTestUoW(e.db))
	ctx := context.Background()

	c, err := svc.Create(ctx, testutil.TestUserID, app.CourseInput{Name: "Physics", Code: "PHY1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, testutil.TestUserID, c.ID, app.CoursePatch{Name: strPtr("Physics II")})
	require.NoError(t, err)
	assert.Equal(t, "Physics II", updated.Name)
	assert.Equal(t, "PHY1", updated.Code)

	_, err = svc.Update(ctx, testutil.TestUserID, "missing", app.CoursePatch{Name: strPtr("x")})
	requireCode(t, err, app.ErrNotFound)
}

func TestCourseService_DeleteWithTasksRequiresForce(t *testing.T) {
	e := newEnv(t)
	obs := &captureObserver{}
	svc := NewCourseService(e.courses, testutil.NewTestUoW(e.db), obs)
	ctx := context.Background()

	c := e.seedCourse(t, "History")
	e.seedTask(t, c.ID, "Essay")
	e.seedTask(t, c.ID, "Reading")

	_, err := svc.Delete(ctx, testutil.TestUserID, c.ID, false)
	requireCode(t, err, app.ErrConflict)
	assert.Contains(t, err.Error(), "2 task(s)")
	assert.False(t, obs.last().Success)

	res, err := svc.Delete(ctx, testutil.TestUserID, c.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TasksDeleted)
	assert.True(t, obs.last().Success)
	assert.Equal(t, int64(2), obs.last().Fields["tasks_deleted"])

	_, err = e.courses.GetByID(ctx, testutil.TestUserID, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	left, err := e.tasks.ListByUser(ctx, testutil.TestUserID, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCourseService_DeleteEmptyCourse(t *testing.T) {
	e := newEnv(t)
	svc := NewCourseService(e.courses, testutil.NewTestUoW(e.db))
	ctx := context.Background()

	c := e.seedCourse(t, "Empty")
	res, err := svc.Delete(ctx, testutil.TestUserID, c.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.TasksDeleted)

	_, err = svc.Delete(ctx, testutil.TestUserID, c.ID, false)
	requireCode(t, err, app.ErrNotFound)
}
