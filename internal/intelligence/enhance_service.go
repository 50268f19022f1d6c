package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

// EnhanceService post-processes the narrative fields of a generated plan.
type EnhanceService interface {
	// Enhance returns the merged plan and true, or the input plan and false
	// when the model could not be used. Failures are logged, never returned.
	Enhance(ctx context.Context, plan *domain.GeneratedPlan) (*domain.GeneratedPlan, bool)
}

type enhanceService struct {
	client llm.Client
	log    *logger.Logger
}

// NewEnhanceService creates an EnhanceService backed by an LLM client.
func NewEnhanceService(client llm.Client, log *logger.Logger) EnhanceService {
	if log == nil {
		log = logger.NewNop()
	}
	return &enhanceService{client: client, log: log}
}

// enhancePromptInput is the plan view embedded in the user prompt.
type enhancePromptInput struct {
	Summary    string           `json:"summary"`
	DayCount   int              `json:"dayCount"`
	TotalHours float64          `json:"totalHours"`
	Days       []domain.PlanDay `json:"days"`
}

func (s *enhanceService) Enhance(ctx context.Context, plan *domain.GeneratedPlan) (*domain.GeneratedPlan, bool) {
	if s.client == nil || plan == nil || len(plan.Days) == 0 {
		return plan, false
	}

	prompt, err := buildEnhancePrompt(plan)
	if err != nil {
		s.log.Warn("plan enhancement skipped", "error", err)
		return plan, false
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskEnhance,
		SystemPrompt: enhanceSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		s.log.Warn("plan enhancement failed", "error", err)
		return plan, false
	}

	ext, err := llm.ExtractJSON(resp.Text, func(e PlanEnhancement) error {
		if e.IsEmpty() {
			return fmt.Errorf("enhancement has no summary, dayDescriptions or studyTips")
		}
		return nil
	})
	if err != nil {
		s.log.Warn("plan enhancement unparseable", "error", err, "attempts", resp.Attempts)
		return plan, false
	}

	return MergeEnhancement(plan, ext), true
}

func buildEnhancePrompt(plan *domain.GeneratedPlan) (string, error) {
	data, err := json.MarshalIndent(enhancePromptInput{
		Summary:    plan.Summary,
		DayCount:   len(plan.Days),
		TotalHours: plan.TotalHours(),
		Days:       plan.Days,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}
	return fmt.Sprintf("Here is the study plan (%d days, %.1f total hours):\n\n%s",
		len(plan.Days), plan.TotalHours(), data), nil
}
