package scheduler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Narrative is the text derived from a finished schedule.
type Narrative struct {
	Summary         string
	DayDescriptions map[string]string
	StudyTips       []string
}

// maxListedTasks caps the "Tasks include" list in a day description.
const maxListedTasks = 3

// Describe builds the summary, per-day descriptions and study tips for a
// schedule. totalTasks counts every input task, scheduled or not.
func Describe(days []domain.PlanDay, totalTasks int, dailyHours float64) Narrative {
	return Narrative{
		Summary:         summarize(days, totalTasks, dailyHours),
		DayDescriptions: describeDays(days, dailyHours),
		StudyTips:       StudyTips(dailyHours),
	}
}

func summarize(days []domain.PlanDay, totalTasks int, dailyHours float64) string {
	var totalHours float64
	courses := make(map[string]bool)
	for _, d := range days {
		totalHours += d.Hours()
		for _, b := range d.Blocks {
			courses[b.Course] = true
		}
	}
	var avg float64
	if len(days) > 0 {
		avg = totalHours / float64(len(days))
	}

	return fmt.Sprintf("This study plan spreads %d tasks across %d days, totaling %.1f hours of focused study time. "+
		"You'll be studying approximately %.1f hours per day with content from %d course(s). "+
		"The plan is designed to balance your workload evenly while respecting your %s hour daily study preference.",
		totalTasks, len(days), totalHours, avg, len(courses), formatHours(dailyHours))
}

func describeDays(days []domain.PlanDay, dailyHours float64) map[string]string {
	out := make(map[string]string, len(days))
	for _, d := range days {
		out[d.Day] = describeDay(d, dailyHours)
	}
	return out
}

func describeDay(d domain.PlanDay, dailyHours float64) string {
	courseNames := make([]string, len(d.Blocks))
	var specific []string
	for i, b := range d.Blocks {
		courseNames[i] = b.Course
		for _, t := range b.Tasks {
			specific = append(specific, b.Course+": "+t)
		}
	}
	taskCount := d.TaskCount()
	dayHours := d.Hours()

	var sb strings.Builder
	plural := "s"
	if taskCount == 1 {
		plural = ""
	}
	fmt.Fprintf(&sb, "%s: Focus on %s with %d task%s (%.1f hours). ",
		d.Day, strings.Join(courseNames, " and "), taskCount, plural, dayHours)

	if len(specific) > 0 {
		listed := specific
		if len(listed) > maxListedTasks {
			listed = listed[:maxListedTasks]
		}
		sb.WriteString("Tasks include: " + strings.Join(listed, ", "))
		if extra := len(specific) - maxListedTasks; extra > 0 {
			fmt.Fprintf(&sb, ", and %d more", extra)
		}
		sb.WriteString(". ")
	}

	switch {
	case len(d.Blocks) > 1:
		sb.WriteString("You have multiple subjects today, so try the Pomodoro technique to switch between courses effectively.")
	case dayHours > dailyHours*0.8:
		sb.WriteString("This is a busy day - make sure to take short breaks every 25-30 minutes.")
	default:
		sb.WriteString("This is a lighter day - use it to consolidate learning or get ahead on upcoming tasks.")
	}
	return sb.String()
}

// StudyTips returns the fixed list of study-strategy tips.
func StudyTips(dailyHours float64) []string {
	return []string{
		fmt.Sprintf("Study consistently at the same time each day to build a routine. Aim for %s hours daily as planned.", formatHours(dailyHours)),
		"Use the Pomodoro Technique: Study for 25 minutes, take a 5-minute break, then repeat. After 4 cycles, take a 15-minute break.",
		"Break complex tasks into smaller subtasks. This makes progress visible and keeps motivation high.",
		"The spacing effect works best when you review material after 1 day, 3 days, and 1 week. Plan reviews accordingly.",
		"Group similar subjects together when possible to maintain context and reduce cognitive switching costs.",
		"Complete harder or more important tasks early in the day when your mental energy is highest.",
		"Track completed tasks to visualize progress. Even small wins contribute to motivation.",
	}
}

// formatHours prints a preference without trailing zeros (3, 2.5).
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
