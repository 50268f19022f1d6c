package formatter

import (
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/studyplan/internal/domain"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI keeps assertions independent of the terminal's colour profile.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	SetColorEnabled(false)
	os.Exit(m.Run())
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2h", FormatHours(2))
	assert.Equal(t, "1.5h", FormatHours(1.5))
	assert.Equal(t, "0.33h", FormatHours(1.0/3))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "LONGER"}, [][]string{{"first", "x"}, {"b", "y"}}))
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A      LONGER", lines[0])
	assert.Equal(t, "first  x", lines[2])
	assert.Equal(t, "b      y", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatPlan(t *testing.T) {
	plan := &domain.GeneratedPlan{
		Days: []domain.PlanDay{
			{Day: "Monday", Blocks: []domain.PlanBlock{
				{Course: "Math", Tasks: []string{"Problem set", "Quiz prep"}, DurationHours: 1.5},
				{Course: "History", Tasks: []string{"Essay"}, DurationHours: 0.5, Notes: "outline first"},
			}},
		},
		Summary:         "Plan for 3 tasks across 1 day.",
		DayDescriptions: map[string]string{"Monday": "Focus on Math"},
		StudyTips:       []string{"Take breaks"},
	}

	out := stripANSI(FormatPlan(PlanView{
		Title:      "Week 1",
		Plan:       plan,
		Enhanced:   true,
		Unassigned: []string{"Thesis"},
		SavedID:    "plan-123",
	}))

	for _, want := range []string{
		"WEEK 1", "Plan for 3 tasks across 1 day.", "enhanced",
		"MONDAY  2H", "Focus on Math",
		"Math  1.5h", "• Problem set", "• Quiz prep",
		"History  0.5h", "outline first",
		"TIPS", "Take breaks",
		"Not scheduled this week (1):", "- Thesis",
		"Saved as plan-123",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Problem set"), strings.Index(out, "Essay"))
}

func TestFormatPlan_Nil(t *testing.T) {
	assert.Equal(t, "No plan.", stripANSI(FormatPlan(PlanView{})))
}

func TestFormatTaskList(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	due := now.Add(3 * 24 * time.Hour)
	hours := 2.0
	tasks := []*domain.Task{
		{ID: "0123456789abcdef", Title: "Lab report", CourseName: "Physics", Status: domain.TaskTodo,
			Priority: domain.PriorityHigh, DueDate: &due, EstimatedHours: &hours},
		{ID: "fedcba", Title: "Reading", Status: domain.TaskDone, Priority: domain.PriorityNormal},
	}

	out := stripANSI(FormatTaskList(tasks, now))
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Lab report")
	assert.Contains(t, out, "▲ high")
	assert.Contains(t, out, "2026-02-10 (In 3d)")
	assert.Contains(t, out, "✔ Done")
	assert.Contains(t, out, "2h")
}

func TestFormatCourseList(t *testing.T) {
	target := 6.0
	out := stripANSI(FormatCourseList([]*domain.Course{
		{ID: "c1", Name: "Chemistry", Code: "CHEM101", Color: "#fb4934", TargetHoursPerWeek: &target},
		{ID: "c2", Name: "Drawing"},
	}))
	assert.Contains(t, out, "COURSES")
	assert.Contains(t, out, "■ Chemistry")
	assert.Contains(t, out, "CHEM101")
	assert.Contains(t, out, "6h")
	assert.Contains(t, out, "Drawing")
}
