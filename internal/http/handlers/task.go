package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/http/response"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

type TaskHandler struct {
	log   *logger.Logger
	tasks app.TaskUseCase
}

func NewTaskHandler(log *logger.Logger, tasks app.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		log:   log.With("handler", "TaskHandler"),
		tasks: tasks,
	}
}

func (h *TaskHandler) fail(c *gin.Context, op string, err error) {
	if app.CodeOf(err) == app.ErrInternal {
		h.log.Error(op+" failed", "error", err)
	}
	response.RespondAppError(c, err, response.MsgInternal)
}

func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	filter := app.TaskListFilter{
		CourseID: c.Query("course_id"),
		Status:   domain.TaskStatus(c.Query("status")),
	}
	tasks, err := h.tasks.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.fail(c, "ListTasks", err)
		return
	}
	response.RespondOK(c, gin.H{"tasks": newTaskViews(tasks)})
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var in app.TaskInput
	if err := bindJSON(c, &in); err != nil {
		respondInvalid(c, MsgInvalidJSON)
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), userID, in)
	if err != nil {
		h.fail(c, "CreateTask", err)
		return
	}
	response.RespondCreated(c, newTaskView(task))
}

func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	task, err := h.tasks.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, "GetTask", err)
		return
	}
	response.RespondOK(c, newTaskView(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var patch app.TaskPatch
	if err := bindJSON(c, &patch); err != nil {
		respondInvalid(c, MsgInvalidJSON)
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		h.fail(c, "UpdateTask", err)
		return
	}
	response.RespondOK(c, newTaskView(task))
}

func (h *TaskHandler) MarkDone(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	task, err := h.tasks.MarkDone(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, "MarkTaskDone", err)
		return
	}
	response.RespondOK(c, newTaskView(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.fail(c, "DeleteTask", err)
		return
	}
	c.Status(http.StatusNoContent)
}
