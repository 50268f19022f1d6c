package intelligence

// PlanEnhancement is the JSON object the model returns for a plan. Every field
// is optional; absent fields leave the deterministic text untouched.
type PlanEnhancement struct {
	Summary         string            `json:"summary"`
	DayDescriptions map[string]string `json:"dayDescriptions"`
	StudyTips       []string          `json:"studyTips"`
}

// IsEmpty reports whether the enhancement carries nothing to merge.
func (e PlanEnhancement) IsEmpty() bool {
	return e.Summary == "" && len(e.DayDescriptions) == 0 && len(e.StudyTips) == 0
}

// BlockExplainRequest describes one plan block to explain.
type BlockExplainRequest struct {
	Course        string   `json:"course"`
	Tasks         []string `json:"tasks"`
	DurationHours *float64 `json:"duration_hours"`
	Notes         string   `json:"notes"`
}

// BlockExplanation is study guidance for a single block. Fallback is set when
// the text came from the deterministic generator.
type BlockExplanation struct {
	Explanation string `json:"explanation"`
	Fallback    bool   `json:"fallback,omitempty"`
}
