package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_FourFallbackTasksOneCourse(t *testing.T) {
	tasks := []domain.Task{
		makeTask("T1", "CS101", domain.PriorityNormal),
		makeTask("T2", "CS101", domain.PriorityNormal),
		makeTask("T3", "CS101", domain.PriorityNormal),
		makeTask("T4", "CS101", domain.PriorityNormal),
	}

	plan, alloc := BuildPlan(tasks, 3, testNow, DefaultPolicy())

	require.Len(t, plan.Days, 2)
	assert.Equal(t, "Monday", plan.Days[0].Day)
	require.Len(t, plan.Days[0].Blocks, 1)
	assert.Equal(t, domain.PlanBlock{
		Course:        "CS101",
		Tasks:         []string{"T1", "T2"},
		DurationHours: 3,
		Notes:         "2 task(s) | Priority: normal",
	}, plan.Days[0].Blocks[0])
	assert.Equal(t, "Tuesday", plan.Days[1].Day)
	assert.Equal(t, []string{"T3", "T4"}, plan.Days[1].Blocks[0].Tasks)
	assert.InDelta(t, 6.0, plan.TotalHours(), 1e-9)
	assert.Contains(t, plan.Summary, "spreads 4 tasks across 2 days, totaling 6.0 hours")
	assert.Contains(t, plan.Summary, "approximately 3.0 hours per day with content from 1 course(s)")
	assert.Empty(t, alloc.Unassigned)
}

func TestBuildPlan_DueSoonLowScheduledBeforeUrgent(t *testing.T) {
	tasks := []domain.Task{
		withHours(makeTask("Urgent essay", "ENG", domain.PriorityUrgent), 2),
		withHours(dueIn(makeTask("Quiz prep", "MATH", domain.PriorityLow), 24*time.Hour), 2),
	}

	plan, _ := BuildPlan(tasks, 2, testNow, DefaultPolicy())

	require.Len(t, plan.Days, 2)
	assert.Equal(t, []string{"Quiz prep"}, plan.Days[0].Blocks[0].Tasks)
	assert.Equal(t, []string{"Urgent essay"}, plan.Days[1].Blocks[0].Tasks)
}

func TestBuildPlan_MixedCoursesOneDay(t *testing.T) {
	math := withHours(makeTask("Problem set", "math", domain.PriorityHigh), 1)
	math.CourseName = "Calculus"
	bio := withHours(makeTask("Lab report", "bio", domain.PriorityNormal), 1)
	bio.CourseName = "Biology"

	plan, _ := BuildPlan([]domain.Task{bio, math}, 3, testNow, DefaultPolicy())

	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Blocks, 2)
	assert.Equal(t, "Calculus", plan.Days[0].Blocks[0].Course)
	assert.Equal(t, "Biology", plan.Days[0].Blocks[1].Course)
	assert.Contains(t, plan.DayDescriptions["Monday"], "Pomodoro")
}

func TestBuildPlan_SummaryCountsUnscheduledTasks(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 9; i++ {
		tasks = append(tasks, withHours(makeTask(string(rune('A'+i)), "c", ""), 1))
	}

	plan, alloc := BuildPlan(tasks, 1, testNow, DefaultPolicy())

	assert.Len(t, plan.Days, 7)
	assert.Len(t, alloc.Unassigned, 2)
	assert.Contains(t, plan.Summary, "spreads 9 tasks across 7 days")
}

func TestBuildPlan_NoTasks(t *testing.T) {
	plan, alloc := BuildPlan(nil, 3, testNow, DefaultPolicy())

	assert.NotNil(t, plan.Days)
	assert.Empty(t, plan.Days)
	assert.Empty(t, alloc.Days)
	assert.Len(t, plan.StudyTips, 7)
}
