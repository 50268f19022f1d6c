package intelligence

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// InsightsMarker separates the deterministic summary from appended model text.
const InsightsMarker = "\n\nAI insights: "

// MergeEnhancement returns a copy of base with ext folded in. The summary is
// appended after InsightsMarker, day descriptions are overridden only for days
// present in the plan, and tips are unioned with base tips first. Days and
// blocks are never touched.
func MergeEnhancement(base *domain.GeneratedPlan, ext PlanEnhancement) *domain.GeneratedPlan {
	out := base.Clone()
	if out == nil {
		return nil
	}

	if s := strings.TrimSpace(ext.Summary); s != "" {
		out.Summary += InsightsMarker + s
	}

	planned := make(map[string]bool, len(out.Days))
	for _, d := range out.Days {
		planned[d.Day] = true
	}
	for day, text := range ext.DayDescriptions {
		text = strings.TrimSpace(text)
		if !planned[day] || text == "" {
			continue
		}
		out.DayDescriptions[day] = text
	}

	out.StudyTips = unionTips(out.StudyTips, ext.StudyTips)
	return out
}

// unionTips keeps first occurrences, base before extra. Blank tips are dropped.
func unionTips(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, tip := range list {
			tip = strings.TrimSpace(tip)
			if tip == "" || seen[tip] {
				continue
			}
			seen[tip] = true
			out = append(out, tip)
		}
	}
	return out
}
