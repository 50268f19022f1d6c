package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/app"
)

// resolveID matches input against ids exactly, then as a unique prefix, so
// the short ids shown in listings can be typed back.
func resolveID(kind, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveCourseID(ctx context.Context, a *App, input string) (string, error) {
	courses, err := a.Courses.List(ctx, a.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return resolveID("course", input, ids)
}

func resolveTaskID(ctx context.Context, a *App, input string) (string, error) {
	tasks, err := a.Tasks.List(ctx, a.UserID, app.TaskListFilter{})
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return resolveID("task", input, ids)
}

func resolvePlanID(ctx context.Context, a *App, input string) (string, error) {
	plans, err := a.Plans.List(ctx, a.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	return resolveID("plan", input, ids)
}
