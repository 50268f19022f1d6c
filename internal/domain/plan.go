package domain

import "time"

// DefaultPlanTitle is used when a plan is saved without a title.
const DefaultPlanTitle = "Untitled Plan"

type PlanBlock struct {
	Course        string   `json:"course"`
	Tasks         []string `json:"tasks"`
	DurationHours float64  `json:"duration_hours"`
	Notes         string   `json:"notes,omitempty"`
}

type PlanDay struct {
	Day    string      `json:"day"`
	Blocks []PlanBlock `json:"blocks"`
}

// Hours returns the sum of the day's block durations.
func (d PlanDay) Hours() float64 {
	var total float64
	for _, b := range d.Blocks {
		total += b.DurationHours
	}
	return total
}

// TaskCount returns the number of task titles across the day's blocks.
func (d PlanDay) TaskCount() int {
	n := 0
	for _, b := range d.Blocks {
		n += len(b.Tasks)
	}
	return n
}

type GeneratedPlan struct {
	Days            []PlanDay         `json:"days"`
	Summary         string            `json:"summary"`
	DayDescriptions map[string]string `json:"dayDescriptions"`
	StudyTips       []string          `json:"studyTips"`
}

// TotalHours returns the hours allocated across every day.
func (p *GeneratedPlan) TotalHours() float64 {
	var total float64
	for _, d := range p.Days {
		total += d.Hours()
	}
	return total
}

// Clone returns a deep copy so callers can modify narrative fields without
// touching the original.
func (p *GeneratedPlan) Clone() *GeneratedPlan {
	if p == nil {
		return nil
	}
	out := &GeneratedPlan{
		Days:            make([]PlanDay, len(p.Days)),
		Summary:         p.Summary,
		DayDescriptions: make(map[string]string, len(p.DayDescriptions)),
		StudyTips:       append([]string(nil), p.StudyTips...),
	}
	for i, d := range p.Days {
		blocks := make([]PlanBlock, len(d.Blocks))
		for j, b := range d.Blocks {
			b.Tasks = append([]string(nil), b.Tasks...)
			blocks[j] = b
		}
		out.Days[i] = PlanDay{Day: d.Day, Blocks: blocks}
	}
	for k, v := range p.DayDescriptions {
		out.DayDescriptions[k] = v
	}
	return out
}

// SavedPlan is a generated plan persisted for a user.
type SavedPlan struct {
	ID        string
	UserID    string
	Title     string
	Plan      GeneratedPlan
	CreatedAt time.Time
}

// PlanSummary is a saved plan without its body, for listings.
type PlanSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DayCount  int       `json:"dayCount"`
	CreatedAt time.Time `json:"created_at"`
}
