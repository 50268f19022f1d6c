package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/app"
)

// App holds the use cases and process hooks the commands run against.
type App struct {
	Courses app.CourseUseCase
	Tasks   app.TaskUseCase
	Plans   app.PlanUseCase
	Import  app.ImportCourseUseCase

	// Serve runs the HTTP API until ctx is done. When nil, serve reports
	// that the server is unavailable.
	Serve       func(ctx context.Context, addr string) error
	DefaultAddr string

	// UserID owns everything the CLI reads and writes. --user overrides it.
	UserID string

	// IsInteractive reports whether prompts can be shown. nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. nil uses a huh confirm form.
	Confirm func(title string) (bool, error)
	// Now is the clock for relative dates. nil means time.Now.
	Now func() time.Time
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Course and task tracker with a weekly study planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if a.UserID == "" {
		a.UserID = "local"
	}
	root.PersistentFlags().StringVar(&a.UserID, "user", a.UserID, "User id that owns courses, tasks and plans")

	root.AddCommand(
		newServeCmd(a),
		newCourseCmd(a),
		newTaskCmd(a),
		newPlanCmd(a),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// confirm asks before a destructive action. Without a terminal, or with
// --yes, the action goes ahead.
func (a *App) confirm(skip bool, title string) (bool, error) {
	if skip || !a.interactive() {
		return true, nil
	}
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return huhConfirm(title)
}
