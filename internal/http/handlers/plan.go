package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/http/response"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

// PlanHandler serves plans built from, and saved for, the signed-in user.
type PlanHandler struct {
	log   *logger.Logger
	plans app.PlanUseCase
}

func NewPlanHandler(log *logger.Logger, plans app.PlanUseCase) *PlanHandler {
	return &PlanHandler{
		log:   log.With("handler", "PlanHandler"),
		plans: plans,
	}
}

func (h *PlanHandler) fail(c *gin.Context, op string, err error) {
	if app.CodeOf(err) == app.ErrInternal {
		h.log.Error(op+" failed", "error", err)
	}
	response.RespondAppError(c, err, app.MsgGenerationFailed)
}

func (h *PlanHandler) Generate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req app.GenerateForUserRequest
	if err := bindJSON(c, &req); err != nil {
		respondInvalid(c, planBodyMessage(err))
		return
	}
	req.UserID = userID
	resp, err := h.plans.GenerateForUser(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "GenerateForUser", err)
		return
	}
	if resp.SavedPlanID != "" {
		c.JSON(http.StatusCreated, resp)
		return
	}
	response.RespondOK(c, resp)
}

func (h *PlanHandler) Save(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var in app.SavePlanInput
	if err := bindJSON(c, &in); err != nil {
		respondInvalid(c, MsgInvalidJSON)
		return
	}
	saved, err := h.plans.Save(c.Request.Context(), userID, in)
	if err != nil {
		h.fail(c, "SavePlan", err)
		return
	}
	response.RespondCreated(c, newSavedPlanView(saved))
}

func (h *PlanHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	plans, err := h.plans.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "ListPlans", err)
		return
	}
	if plans == nil {
		plans = []domain.PlanSummary{}
	}
	response.RespondOK(c, gin.H{"plans": plans})
}

func (h *PlanHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	saved, err := h.plans.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, "GetPlan", err)
		return
	}
	response.RespondOK(c, newSavedPlanView(saved))
}

func (h *PlanHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.plans.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.fail(c, "DeletePlan", err)
		return
	}
	c.Status(http.StatusNoContent)
}
