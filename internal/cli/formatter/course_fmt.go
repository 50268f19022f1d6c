package formatter

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatCourseList renders courses as a table inside a box.
func FormatCourseList(courses []*domain.Course) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Dim(ShortID(c.ID)),
			courseSwatch(c.Color) + Bold(c.Name),
			orDash(c.Code),
			targetHours(c.TargetHoursPerWeek),
		})
	}
	return RenderBox("Courses", RenderTable([]string{"ID", "NAME", "CODE", "TARGET/WK"}, rows))
}

// FormatCourse renders one course's details.
func FormatCourse(c *domain.Course) string {
	lines := []string{
		Dim("ID      ") + c.ID,
		Dim("Name    ") + courseSwatch(c.Color) + Bold(c.Name),
		Dim("Code    ") + orDash(c.Code),
		Dim("Target  ") + targetHours(c.TargetHoursPerWeek),
	}
	return strings.Join(lines, "\n")
}

func courseSwatch(color string) string {
	if color == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " "
}

func targetHours(h *float64) string {
	if h == nil {
		return Dim("--")
	}
	return FormatHours(*h)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
