package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded border, with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// FormatHours renders hours compactly: 2 -> "2h", 1.5 -> "1.5h".
func FormatHours(h float64) string {
	rounded := math.Round(h*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "h"
}

// RelativeDateFrom describes t relative to now in whole days.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueDateStyled renders a due date with urgency colouring: overdue or within
// two days is red, within a week yellow.
func DueDateStyled(due *time.Time, now time.Time) string {
	if due == nil {
		return Dim("--")
	}
	date := due.Format(time.DateOnly)
	switch days := due.Sub(now).Hours() / 24; {
	case days <= 2:
		date = StyleRed.Render(date)
	case days <= 7:
		date = StyleYellow.Render(date)
	}
	return date + " " + Dim("("+RelativeDateFrom(*due, now)+")")
}

// ShortID returns the first 8 characters of an id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
