package intelligence

import (
	"fmt"
	"strings"
)

// DeterministicBlockExplanation builds block guidance without the model.
func DeterministicBlockExplanation(req BlockExplainRequest) *BlockExplanation {
	listed := req.Tasks
	if len(listed) > 3 {
		listed = listed[:3]
	}
	hours := "an appropriate amount of"
	if req.DurationHours != nil {
		hours = fmt.Sprintf("%.1f", *req.DurationHours)
	}
	more := ""
	if extra := len(req.Tasks) - 3; extra > 0 {
		more = fmt.Sprintf(", and %d more task(s)", extra)
	}

	return &BlockExplanation{
		Explanation: fmt.Sprintf("(Fallback) For %s spend about %s hour(s). Start with: %s%s. "+
			"Break work into focused 25–50 minute sessions and review notes after each session. Prioritize harder tasks first.",
			req.Course, hours, strings.Join(listed, ", "), more),
		Fallback: true,
	}
}
