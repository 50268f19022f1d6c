package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// PlanView is everything the plan renderer shows.
type PlanView struct {
	Title      string
	Plan       *domain.GeneratedPlan
	Enhanced   bool
	Unassigned []string
	SavedID    string
}

// FormatPlan renders a weekly plan: summary box, one section per day, then
// tips and anything left unscheduled.
func FormatPlan(v PlanView) string {
	if v.Plan == nil {
		return Dim("No plan.")
	}

	var b strings.Builder
	title := v.Title
	if title == "" {
		title = "Study plan"
	}
	summary := v.Plan.Summary
	if v.Enhanced {
		summary += "\n" + StylePurple.Render("✦ enhanced")
	}
	b.WriteString(RenderBox(title, summary))
	b.WriteString("\n")

	for _, day := range v.Plan.Days {
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("%s  %s", day.Day, FormatHours(day.Hours()))))
		b.WriteString("\n")
		if desc := v.Plan.DayDescriptions[day.Day]; desc != "" {
			b.WriteString(Dim(desc))
			b.WriteString("\n")
		}
		for _, block := range day.Blocks {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Bold(block.Course), StyleGreen.Render(FormatHours(block.DurationHours))))
			for _, task := range block.Tasks {
				b.WriteString("    • " + task + "\n")
			}
			if block.Notes != "" {
				b.WriteString("    " + Dim(block.Notes) + "\n")
			}
		}
	}

	if len(v.Plan.StudyTips) > 0 {
		b.WriteString("\n" + Header("Tips") + "\n")
		for _, tip := range v.Plan.StudyTips {
			b.WriteString("  " + StyleBlue.Render("›") + " " + tip + "\n")
		}
	}

	if len(v.Unassigned) > 0 {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("Not scheduled this week (%d):", len(v.Unassigned))) + "\n")
		for _, title := range v.Unassigned {
			b.WriteString("  - " + title + "\n")
		}
	}

	if v.SavedID != "" {
		b.WriteString("\n" + Dim("Saved as "+v.SavedID) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatPlanList(plans []domain.PlanSummary) string {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			Bold(p.Title),
			fmt.Sprintf("%d", p.DayCount),
			p.CreatedAt.Local().Format(time.DateTime),
		})
	}
	return RenderBox("Plans", RenderTable([]string{"ID", "TITLE", "DAYS", "CREATED"}, rows))
}
