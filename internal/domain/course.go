package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Course struct {
	ID                 string
	UserID             string
	Name               string
	Code               string
	Color              string
	TargetHoursPerWeek *float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the fields a course must carry before it is stored.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("course name is required")
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		return fmt.Errorf("color %q must be a hex value like #83a598", c.Color)
	}
	if c.TargetHoursPerWeek != nil && *c.TargetHoursPerWeek < 0 {
		return fmt.Errorf("target hours per week must not be negative")
	}
	return nil
}

// DisplayName returns the code when present, then the name.
func (c *Course) DisplayName() string {
	if c.Code != "" {
		return c.Code + " " + c.Name
	}
	return c.Name
}
