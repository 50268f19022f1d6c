package intelligence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

// ExplainService produces study guidance for a single plan block.
type ExplainService interface {
	// ExplainBlock never fails: model errors yield the deterministic text.
	ExplainBlock(ctx context.Context, req BlockExplainRequest) *BlockExplanation
}

type explainService struct {
	client llm.Client
	log    *logger.Logger
}

// NewExplainService creates an ExplainService backed by an LLM client.
func NewExplainService(client llm.Client, log *logger.Logger) ExplainService {
	if log == nil {
		log = logger.NewNop()
	}
	return &explainService{client: client, log: log}
}

func (s *explainService) ExplainBlock(ctx context.Context, req BlockExplainRequest) *BlockExplanation {
	if s.client == nil {
		return DeterministicBlockExplanation(req)
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExplain,
		SystemPrompt: explainSystemPrompt,
		UserPrompt:   buildExplainPrompt(req),
	})
	if err != nil {
		s.log.Warn("block explanation failed", "course", req.Course, "error", err)
		return DeterministicBlockExplanation(req)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return DeterministicBlockExplanation(req)
	}
	return &BlockExplanation{Explanation: text}
}

func buildExplainPrompt(req BlockExplainRequest) string {
	duration := "unknown"
	if req.DurationHours != nil {
		duration = strconv.FormatFloat(*req.DurationHours, 'f', -1, 64)
	}
	notes := req.Notes
	if notes == "" {
		notes = "none"
	}
	return fmt.Sprintf("Write a helpful 3-4 sentence study guidance for this study block. Course: %s. Tasks: %s. "+
		"Estimated duration: %s hours. Notes: %s. Give actionable tips and how to sequence the tasks.",
		req.Course, strings.Join(req.Tasks, ", "), duration, notes)
}
