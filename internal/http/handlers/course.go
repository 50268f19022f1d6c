package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/http/response"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

type CourseHandler struct {
	log     *logger.Logger
	courses app.CourseUseCase
	imports app.ImportCourseUseCase
}

func NewCourseHandler(log *logger.Logger, courses app.CourseUseCase, imports app.ImportCourseUseCase) *CourseHandler {
	return &CourseHandler{
		log:     log.With("handler", "CourseHandler"),
		courses: courses,
		imports: imports,
	}
}

func (h *CourseHandler) fail(c *gin.Context, op string, err error) {
	if app.CodeOf(err) == app.ErrInternal {
		h.log.Error(op+" failed", "error", err)
	}
	response.RespondAppError(c, err, response.MsgInternal)
}

func (h *CourseHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	courses, err := h.courses.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "ListCourses", err)
		return
	}
	response.RespondOK(c, gin.H{"courses": newCourseViews(courses)})
}

func (h *CourseHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var in app.CourseInput
	if err := bindJSON(c, &in); err != nil {
		respondInvalid(c, MsgInvalidJSON)
		return
	}
	course, err := h.courses.Create(c.Request.Context(), userID, in)
	if err != nil {
		h.fail(c, "CreateCourse", err)
		return
	}
	response.RespondCreated(c, newCourseView(course))
}

func (h *CourseHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	course, err := h.courses.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, "GetCourse", err)
		return
	}
	response.RespondOK(c, newCourseView(course))
}

func (h *CourseHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var patch app.CoursePatch
	if err := bindJSON(c, &patch); err != nil {
		respondInvalid(c, MsgInvalidJSON)
		return
	}
	course, err := h.courses.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		h.fail(c, "UpdateCourse", err)
		return
	}
	response.RespondOK(c, newCourseView(course))
}

func (h *CourseHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	force, err := queryBool(c, "force")
	if err != nil {
		respondInvalid(c, "force must be true or false")
		return
	}
	result, err := h.courses.Delete(c.Request.Context(), userID, c.Param("id"), force)
	if err != nil {
		h.fail(c, "DeleteCourse", err)
		return
	}
	response.RespondOK(c, result)
}

// Import creates a course and its tasks from an import document in the body.
func (h *CourseHandler) Import(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var schema importer.ImportSchema
	if err := c.ShouldBindJSON(&schema); err != nil {
		respondInvalid(c, MsgInvalidJSON)
		return
	}
	result, err := h.imports.ImportCourseFromSchema(c.Request.Context(), userID, &schema)
	if err != nil {
		h.fail(c, "ImportCourse", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"course":     newCourseView(result.Course),
		"task_count": result.TaskCount,
	})
}
