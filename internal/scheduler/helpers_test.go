package scheduler

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func makeTask(id, course string, priority domain.Priority) domain.Task {
	return domain.Task{
		ID:       id,
		Title:    id,
		CourseID: course,
		Priority: priority,
	}
}

func withHours(t domain.Task, h float64) domain.Task {
	t.EstimatedHours = &h
	return t
}

func dueIn(t domain.Task, d time.Duration) domain.Task {
	due := testNow.Add(d)
	t.DueDate = &due
	return t
}

func scoredInOrder(tasks ...domain.Task) []ScoredTask {
	out := make([]ScoredTask, len(tasks))
	for i, t := range tasks {
		out[i] = ScoredTask{Task: t}
	}
	return out
}

func titlesOf(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
