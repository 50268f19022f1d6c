package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newTaskCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(a),
		newTaskListCmd(a),
		newTaskUpdateCmd(a),
		newTaskDoneCmd(a),
		newTaskRemoveCmd(a),
	)

	return cmd
}

func newTaskAddCmd(a *App) *cobra.Command {
	var in app.TaskInput
	var course string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			courseID, err := resolveCourseID(ctx, a, course)
			if err != nil {
				return err
			}
			in.CourseID = courseID
			if cmd.Flags().Changed("hours") {
				in.EstimatedHours = &hours
			}

			t, err := a.Tasks.Create(ctx, a.UserID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s [%s] in %s\n", t.Title, formatter.ShortID(t.ID), t.CourseName)
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course ID or ID prefix")
	cmd.Flags().StringVar(&in.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&in.Description, "desc", "", "Description")
	cmd.Flags().StringVar(&in.Type, "type", "", "homework, reading, exam, project or other")
	cmd.Flags().StringVar(&in.Status, "status", "", "todo, in_progress or done")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "low, normal, medium, high or urgent")
	cmd.Flags().StringVar(&in.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(a *App) *cobra.Command {
	var course, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter := app.TaskListFilter{Status: domain.TaskStatus(status)}
			if course != "" {
				courseID, err := resolveCourseID(ctx, a, course)
				if err != nil {
					return err
				}
				filter.CourseID = courseID
			}

			tasks, err := a.Tasks.List(ctx, a.UserID, filter)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, a.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Only tasks of this course")
	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status")

	return cmd
}

func newTaskUpdateCmd(a *App) *cobra.Command {
	var course, title, desc, typ, status, priority, due string
	var hours float64
	var clearDue bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, a, args[0])
			if err != nil {
				return err
			}

			patch := app.TaskPatch{ClearDueDate: clearDue}
			flags := cmd.Flags()
			if flags.Changed("course") {
				courseID, err := resolveCourseID(ctx, a, course)
				if err != nil {
					return err
				}
				patch.CourseID = &courseID
			}
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("desc") {
				patch.Description = &desc
			}
			if flags.Changed("type") {
				patch.Type = &typ
			}
			if flags.Changed("status") {
				patch.Status = &status
			}
			if flags.Changed("priority") {
				patch.Priority = &priority
			}
			if flags.Changed("due") {
				patch.DueDate = &due
			}
			if flags.Changed("hours") {
				patch.EstimatedHours = &hours
			}

			t, err := a.Tasks.Update(ctx, a.UserID, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s [%s]\n", t.Title, formatter.ShortID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Move to this course")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&typ, "type", "", "homework, reading, exam, project or other")
	cmd.Flags().StringVar(&status, "status", "", "todo, in_progress or done")
	cmd.Flags().StringVar(&priority, "priority", "", "low, normal, medium, high or urgent")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")

	return cmd
}

func newTaskDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, a, args[0])
			if err != nil {
				return err
			}
			t, err := a.Tasks.MarkDone(ctx, a.UserID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", t.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTaskID(ctx, a, args[0])
			if err != nil {
				return err
			}
			t, err := a.Tasks.Get(ctx, a.UserID, id)
			if err != nil {
				return err
			}
			ok, err := a.confirm(yes, fmt.Sprintf("Remove task %s?", t.Title))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := a.Tasks.Delete(ctx, a.UserID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", t.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
