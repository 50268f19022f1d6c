package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateCourse(&schema.Course)...)
	errs = append(errs, validateDefaults(schema.Defaults)...)
	errs = append(errs, validateTasks(schema.Tasks)...)

	return errs
}

func validateCourse(c *CourseImport) []error {
	var errs []error

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, fmt.Errorf("course.name is required"))
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		errs = append(errs, fmt.Errorf("course.color: invalid value %q (expected #rrggbb)", c.Color))
	}
	if c.TargetHoursPerWeek != nil && *c.TargetHoursPerWeek < 0 {
		errs = append(errs, fmt.Errorf("course.target_hours_per_week must not be negative"))
	}

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error

	if d.Type != "" && !domain.ValidTaskTypes[d.Type] {
		errs = append(errs, fmt.Errorf("defaults.type: invalid value %q", d.Type))
	}
	if d.Priority != "" && !domain.ValidPriorities[strings.ToLower(d.Priority)] {
		errs = append(errs, fmt.Errorf("defaults.priority: invalid value %q", d.Priority))
	}
	if d.EstimatedHours != nil && *d.EstimatedHours <= 0 {
		errs = append(errs, fmt.Errorf("defaults.estimated_hours must be positive"))
	}

	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error
	titles := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		title := strings.TrimSpace(t.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		} else if key := strings.ToLower(title); titles[key] {
			errs = append(errs, fmt.Errorf("%s.title: duplicate title %q", prefix, t.Title))
		} else {
			titles[key] = true
		}

		if t.Type != "" && !domain.ValidTaskTypes[t.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, t.Type))
		}
		if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.Priority != "" && !domain.ValidPriorities[strings.ToLower(t.Priority)] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
			errs = append(errs, fmt.Errorf("%s.estimated_hours must not be negative", prefix))
		}
		if t.DueDate != nil {
			if _, err := domain.ParseDueDate(*t.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.due_date: %w", prefix, err))
			}
		}
	}

	return errs
}
