package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ScoredTask pairs a task with its urgency score.
type ScoredTask struct {
	Task  domain.Task
	Score int
}

// SortTasks scores every task and orders them by score, highest first.
// Equal scores keep their input order. The input slice is not modified.
func SortTasks(tasks []domain.Task, now time.Time) []ScoredTask {
	scored := make([]ScoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = ScoredTask{Task: t, Score: ScoreTask(t, now)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
