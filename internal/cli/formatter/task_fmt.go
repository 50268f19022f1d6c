package formatter

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatTaskList renders tasks with due dates relative to now.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		hours := Dim("--")
		if t.EstimatedHours != nil {
			hours = FormatHours(*t.EstimatedHours)
		}
		title := Bold(t.Title)
		if t.Status == domain.TaskDone {
			title = Dim(t.Title)
		}
		rows = append(rows, []string{
			Dim(ShortID(t.ID)),
			title,
			orDash(t.CourseName),
			StatusPill(t.Status),
			PriorityBadge(t.Priority),
			hours,
			DueDateStyled(t.DueDate, now),
		})
	}
	return RenderBox("Tasks", RenderTable([]string{"ID", "TITLE", "COURSE", "STATUS", "PRIORITY", "EST", "DUE"}, rows))
}
