package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	course := testutil.NewTestCourse("Calculus", testutil.WithCode("MATH101"), testutil.WithColor("#83a598"), testutil.WithTargetHours(6))
	require.NoError(t, repo.Create(ctx, course))

	fetched, err := repo.GetByID(ctx, testutil.TestUserID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calculus", fetched.Name)
	assert.Equal(t, "MATH101", fetched.Code)
	assert.Equal(t, "#83a598", fetched.Color)
	require.NotNil(t, fetched.TargetHoursPerWeek)
	assert.InDelta(t, 6.0, *fetched.TargetHoursPerWeek, 0.001)
	assert.True(t, course.CreatedAt.Equal(fetched.CreatedAt))
}

func TestCourseRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)

	_, err := repo.GetByID(context.Background(), testutil.TestUserID, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "course not found")
}

func TestCourseRepo_ListByUser_EmptyIsNotNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)

	list, err := repo.ListByUser(context.Background(), testutil.TestUserID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCourseRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	course := testutil.NewTestCourse("Physics", testutil.WithTargetHours(4))
	require.NoError(t, repo.Create(ctx, course))

	course.Name = "Physics II"
	course.TargetHoursPerWeek = nil
	require.NoError(t, repo.Update(ctx, course))

	fetched, err := repo.GetByID(ctx, testutil.TestUserID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics II", fetched.Name)
	assert.Nil(t, fetched.TargetHoursPerWeek)
}

func TestCourseRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)

	err := repo.Update(context.Background(), testutil.NewTestCourse("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(db)
	ctx := context.Background()

	course := testutil.NewTestCourse("History")
	require.NoError(t, repo.Create(ctx, course))
	require.NoError(t, repo.Delete(ctx, testutil.TestUserID, course.ID))

	_, err := repo.GetByID(ctx, testutil.TestUserID, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, testutil.TestUserID, course.ID), ErrNotFound)
}

func TestCourseRepo_CountTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	courses := NewSQLiteCourseRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	course := testutil.NewTestCourse("Chemistry")
	require.NoError(t, courses.Create(ctx, course))
	for _, title := range []string{"Lab 1", "Lab 2", "Quiz"} {
		require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(course.ID, title)))
	}

	n, err := courses.CountTasks(ctx, testutil.TestUserID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
