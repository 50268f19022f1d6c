package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and manage weekly study plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(a),
		newPlanListCmd(a),
		newPlanShowCmd(a),
		newPlanDeleteCmd(a),
	)

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newPlanGenerateCmd(a *App) *cobra.Command {
	var dailyHours float64
	var useAI, save, asJSON bool
	var title, input string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Schedule unfinished tasks into a week",
		Long: "Schedules your unfinished tasks into the coming week. With --input, the\n" +
			"tasks and preferences are read from a request file instead of storage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			var resp *app.GeneratePlanResponse
			if input != "" {
				req, err := readPlanRequest(input)
				if err != nil {
					return err
				}
				if flags.Changed("daily-hours") || req.Preferences == nil {
					req.Preferences = &app.StudyPreferences{DailyHours: dailyHours}
				}
				if flags.Changed("ai") || req.UseAI == nil {
					req.UseAI = &useAI
				}
				if resp, err = a.Plans.Generate(ctx, req); err != nil {
					return err
				}
				if save {
					saved, err := a.Plans.Save(ctx, a.UserID, app.SavePlanInput{Title: title, Plan: resp.Plan})
					if err != nil {
						return err
					}
					resp.SavedPlanID = saved.ID
				}
			} else {
				var err error
				resp, err = a.Plans.GenerateForUser(ctx, app.GenerateForUserRequest{
					UserID:      a.UserID,
					Preferences: &app.StudyPreferences{DailyHours: dailyHours},
					UseAI:       &useAI,
					Save:        save,
					Title:       title,
				})
				if err != nil {
					return err
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(formatter.PlanView{
				Title:      title,
				Plan:       resp.Plan,
				Enhanced:   resp.Enhanced,
				Unassigned: resp.Unassigned,
				SavedID:    resp.SavedPlanID,
			}))
			return nil
		},
	}

	cmd.Flags().Float64Var(&dailyHours, "daily-hours", 0, "Study hours available per day")
	cmd.Flags().BoolVar(&useAI, "ai", false, "Let the text-generation service rewrite the summary and tips")
	cmd.Flags().BoolVar(&save, "save", false, "Save the generated plan")
	cmd.Flags().StringVar(&title, "title", "", "Title for the saved plan")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().StringVar(&input, "input", "", "Read tasks and preferences from a JSON request file")

	return cmd
}

// readPlanRequest loads a request body in the same shape the HTTP endpoint
// accepts.
func readPlanRequest(path string) (app.GeneratePlanRequest, error) {
	var req app.GeneratePlanRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("reading request file: %w", err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parsing request file: %w", err)
	}
	return req, nil
}

func newPlanListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := a.Plans.List(cmd.Context(), a.UserID)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved plans.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}
}

type savedPlanJSON struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	CreatedAt time.Time             `json:"created_at"`
	Plan      *domain.GeneratedPlan `json:"plan"`
}

func newPlanShowCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePlanID(ctx, a, args[0])
			if err != nil {
				return err
			}
			saved, err := a.Plans.Get(ctx, a.UserID, id)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), savedPlanJSON{
					ID:        saved.ID,
					Title:     saved.Title,
					CreatedAt: saved.CreatedAt,
					Plan:      &saved.Plan,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(formatter.PlanView{
				Title: saved.Title,
				Plan:  &saved.Plan,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}

func newPlanDeleteCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePlanID(ctx, a, args[0])
			if err != nil {
				return err
			}
			ok, err := a.confirm(yes, "Delete this plan?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := a.Plans.Delete(ctx, a.UserID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", formatter.ShortID(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
