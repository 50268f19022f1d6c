package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
)

func newCourseCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(a),
		newCourseListCmd(a),
		newCourseUpdateCmd(a),
		newCourseRemoveCmd(a),
		newCourseImportCmd(a),
	)

	return cmd
}

func newCourseAddCmd(a *App) *cobra.Command {
	var in app.CourseInput
	var target float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("target") {
				in.TargetHoursPerWeek = &target
			}
			c, err := a.Courses.Create(cmd.Context(), a.UserID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created course %s [%s]\n", c.Name, formatter.ShortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Course name")
	cmd.Flags().StringVar(&in.Code, "code", "", "Course code, e.g. MATH221")
	cmd.Flags().StringVar(&in.Color, "color", "", "Display colour as #rrggbb")
	cmd.Flags().Float64Var(&target, "target", 0, "Target study hours per week")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCourseListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := a.Courses.List(cmd.Context(), a.UserID)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseList(courses))
			return nil
		},
	}
}

func newCourseUpdateCmd(a *App) *cobra.Command {
	var name, code, color string
	var target float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCourseID(ctx, a, args[0])
			if err != nil {
				return err
			}

			var patch app.CoursePatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("code") {
				patch.Code = &code
			}
			if flags.Changed("color") {
				patch.Color = &color
			}
			if flags.Changed("target") {
				patch.TargetHoursPerWeek = &target
			}

			c, err := a.Courses.Update(ctx, a.UserID, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourse(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&code, "code", "", "Course code")
	cmd.Flags().StringVar(&color, "color", "", "Display colour as #rrggbb")
	cmd.Flags().Float64Var(&target, "target", 0, "Target study hours per week")

	return cmd
}

func newCourseRemoveCmd(a *App) *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCourseID(ctx, a, args[0])
			if err != nil {
				return err
			}
			c, err := a.Courses.Get(ctx, a.UserID, id)
			if err != nil {
				return err
			}

			prompt := fmt.Sprintf("Remove course %s?", c.Name)
			if force {
				prompt = fmt.Sprintf("Remove course %s and all of its tasks?", c.Name)
			}
			ok, err := a.confirm(yes, prompt)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			result, err := a.Courses.Delete(ctx, a.UserID, id, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed course %s (%d task(s) deleted)\n", c.Name, result.TasksDeleted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Also delete the course's tasks")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newCourseImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a course and its tasks from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportCourse(cmd.Context(), a.UserID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported course %s [%s] with %d task(s)\n",
				result.Course.Name, formatter.ShortID(result.Course.ID), result.TaskCount)
			return nil
		},
	}
}
