package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/http/response"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

const MsgInvalidBlock = "Invalid block payload. Expect { course, tasks[] }"

// AIHandler serves the stateless plan and explanation endpoints. Neither
// touches storage.
type AIHandler struct {
	log     *logger.Logger
	plans   app.PlanUseCase
	explain intelligence.ExplainService
}

func NewAIHandler(log *logger.Logger, plans app.PlanUseCase, explain intelligence.ExplainService) *AIHandler {
	return &AIHandler{
		log:     log.With("handler", "AIHandler"),
		plans:   plans,
		explain: explain,
	}
}

func (h *AIHandler) GeneratePlan(c *gin.Context) {
	var req app.GeneratePlanRequest
	if err := bindJSON(c, &req); err != nil {
		respondInvalid(c, planBodyMessage(err))
		return
	}
	resp, err := h.plans.Generate(c.Request.Context(), req)
	if err != nil {
		if app.CodeOf(err) == app.ErrInternal {
			h.log.Error("GeneratePlan failed", "error", err)
		}
		response.RespondAppError(c, err, app.MsgGenerationFailed)
		return
	}
	response.RespondOK(c, resp)
}

// planBodyMessage maps a decode failure to the message for the field that
// carried the wrong type.
func planBodyMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return MsgInvalidJSON
	}
	switch field := typeErr.Field; {
	case field == "tasks" || strings.HasPrefix(field, "tasks."):
		return app.MsgInvalidTasks
	case field == "preferences":
		return app.MsgInvalidPreferences
	case strings.HasPrefix(field, "preferences."):
		return app.MsgInvalidDailyHours
	default:
		return MsgInvalidJSON
	}
}

func (h *AIHandler) ExplainBlock(c *gin.Context) {
	var req intelligence.BlockExplainRequest
	if err := bindJSON(c, &req); err != nil || strings.TrimSpace(req.Course) == "" || req.Tasks == nil {
		respondInvalid(c, MsgInvalidBlock)
		return
	}
	response.RespondOK(c, h.explain.ExplainBlock(c.Request.Context(), req))
}
