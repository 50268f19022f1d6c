package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for course import.
type ImportSchema struct {
	Course   CourseImport    `json:"course"`
	Defaults *DefaultsImport `json:"defaults,omitempty"`
	Tasks    []TaskImport    `json:"tasks"`
}

// CourseImport defines the course-level fields in the import file.
type CourseImport struct {
	Name               string   `json:"name"`
	Code               string   `json:"code,omitempty"`
	Color              string   `json:"color,omitempty"`
	TargetHoursPerWeek *float64 `json:"target_hours_per_week,omitempty"`
}

// DefaultsImport defines course-wide defaults that cascade to tasks.
type DefaultsImport struct {
	Type           string   `json:"type,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

// TaskImport defines a task in the import file.
type TaskImport struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Type           string   `json:"type,omitempty"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

// LoadImportSchema reads and parses a course import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses an import document already in memory.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
