package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studyplan/internal/app"
	httpH "github.com/alexanderramin/studyplan/internal/http/handlers"
	httpMW "github.com/alexanderramin/studyplan/internal/http/middleware"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/alexanderramin/studyplan/internal/testutil"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T, withAuth bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	courses := repository.NewSQLiteCourseRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	plans := repository.NewSQLitePlanRepo(database)

	planSvc := service.NewPlanService(tasks, plans, nil, scheduler.DefaultPolicy(), log)
	cfg := RouterConfig{
		Log:           log,
		CORSOrigins:   []string{"http://localhost:3000"},
		HealthHandler: httpH.NewHealthHandler(),
		AIHandler:     httpH.NewAIHandler(log, planSvc, intelligence.NewExplainService(nil, log)),
		CourseHandler: httpH.NewCourseHandler(log, service.NewCourseService(courses, uow), service.NewImportService(uow)),
		TaskHandler:   httpH.NewTaskHandler(log, service.NewTaskService(tasks, courses)),
		PlanHandler:   httpH.NewPlanHandler(log, planSvc),
	}
	if withAuth {
		cfg.AuthMiddleware = httpMW.NewAuthMiddleware(log, testSecret)
	}
	return NewRouter(cfg)
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) (message, code string) {
	t.Helper()
	body := decode(t, rec)
	envelope, ok := body["error"].(map[string]any)
	require.True(t, ok, "no error envelope in %s", rec.Body.String())
	message, _ = envelope["message"].(string)
	code, _ = envelope["code"].(string)
	return message, code
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t, false)
	rec := do(t, r, nethttp.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(httpMW.RequestIDHeader))
}

func TestAIPlan_GeneratesPlan(t *testing.T) {
	r := newTestRouter(t, false)
	rec := do(t, r, nethttp.MethodPost, "/api/ai/plan", "", map[string]any{
		"tasks": []map[string]any{
			{"id": "t1", "title": "Essay draft", "course_id": "c1", "course_name": "History", "estimated_hours": 1.5},
			{"id": "t2", "title": "Problem set", "course_id": "c2", "course_name": "Math", "estimated_hours": 1, "priority": "high"},
		},
		"preferences": map[string]any{"dailyHours": 2},
		"useAI":       false,
	})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var resp app.GeneratePlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Plan)
	assert.False(t, resp.Enhanced)
	assert.NotEmpty(t, resp.Plan.Summary)

	var titles []string
	for _, day := range resp.Plan.Days {
		for _, b := range day.Blocks {
			titles = append(titles, b.Tasks...)
		}
	}
	assert.ElementsMatch(t, []string{"Essay draft", "Problem set"}, titles)
}

func TestAIPlan_InputErrors(t *testing.T) {
	r := newTestRouter(t, false)

	tests := []struct {
		name string
		body any
		want string
	}{
		{"empty body", nil, app.MsgNoTasks},
		{"no tasks", map[string]any{"tasks": []any{}, "preferences": map[string]any{"dailyHours": 2}}, app.MsgNoTasks},
		{"tasks not a list", `{"tasks":"essay","preferences":{"dailyHours":2}}`, app.MsgInvalidTasks},
		{"preferences not an object", `{"tasks":[{"title":"a","course_id":"c"}],"preferences":3}`, app.MsgInvalidPreferences},
		{"daily hours not a number", `{"tasks":[{"title":"a","course_id":"c"}],"preferences":{"dailyHours":"two"}}`, app.MsgInvalidDailyHours},
		{"daily hours zero", map[string]any{
			"tasks":       []map[string]any{{"title": "a", "course_id": "c"}},
			"preferences": map[string]any{"dailyHours": 0},
		}, app.MsgInvalidDailyHours},
		{"missing fields", map[string]any{
			"tasks":       []map[string]any{{"title": "a"}, {"course_id": "c"}},
			"preferences": map[string]any{"dailyHours": 2},
		}, "2 task(s) missing required fields (title, course_id)"},
		{"malformed json", `{"tasks": [`, httpH.MsgInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, nethttp.MethodPost, "/api/ai/plan", "", tt.body)
			require.Equal(t, nethttp.StatusBadRequest, rec.Code, rec.Body.String())
			msg, code := errorOf(t, rec)
			assert.Equal(t, tt.want, msg)
			assert.Equal(t, string(app.ErrInvalidInput), code)
		})
	}
}

func TestAIExplain(t *testing.T) {
	r := newTestRouter(t, false)

	rec := do(t, r, nethttp.MethodPost, "/api/ai/explain", "", map[string]any{
		"course":         "Math",
		"tasks":          []string{"Problem set", "Quiz prep"},
		"duration_hours": 2,
	})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, true, body["fallback"])
	assert.True(t, strings.HasPrefix(body["explanation"].(string), "(Fallback) For Math"))

	for _, bad := range []any{
		map[string]any{"tasks": []string{"a"}},
		map[string]any{"course": "Math"},
		map[string]any{"course": "Math", "tasks": "a"},
		"not json",
	} {
		rec := do(t, r, nethttp.MethodPost, "/api/ai/explain", "", bad)
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
		msg, _ := errorOf(t, rec)
		assert.Equal(t, httpH.MsgInvalidBlock, msg)
	}
}

func TestProtectedRoutesAbsentWithoutAuth(t *testing.T) {
	r := newTestRouter(t, false)
	rec := do(t, r, nethttp.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t, true)

	rec := do(t, r, nethttp.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	rec = do(t, r, nethttp.MethodGet, "/api/courses", "not-a-jwt", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	_, code := errorOf(t, rec)
	assert.Equal(t, "unauthorized", code)

	rec = do(t, r, nethttp.MethodGet, "/api/courses", signToken(t, "alice"), nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func createCourse(t *testing.T, r *gin.Engine, token, name string) string {
	t.Helper()
	rec := do(t, r, nethttp.MethodPost, "/api/courses", token, map[string]any{"name": name, "color": "#83a598"})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	id, _ := decode(t, rec)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func createTask(t *testing.T, r *gin.Engine, token, courseID, title string, hours float64) string {
	t.Helper()
	rec := do(t, r, nethttp.MethodPost, "/api/tasks", token, map[string]any{
		"course_id":       courseID,
		"title":           title,
		"estimated_hours": hours,
		"due_date":        "2030-01-10",
	})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	id, _ := decode(t, rec)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCourseLifecycle(t *testing.T) {
	r := newTestRouter(t, true)
	token := signToken(t, "alice")

	courseID := createCourse(t, r, token, "Linear Algebra")
	createTask(t, r, token, courseID, "Eigenvalues", 2)

	rec := do(t, r, nethttp.MethodGet, "/api/courses/"+courseID, token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "Linear Algebra", decode(t, rec)["name"])

	rec = do(t, r, nethttp.MethodPut, "/api/courses/"+courseID, token, map[string]any{"code": "MATH221"})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "MATH221", decode(t, rec)["code"])

	rec = do(t, r, nethttp.MethodDelete, "/api/courses/"+courseID, token, nil)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
	_, code := errorOf(t, rec)
	assert.Equal(t, string(app.ErrConflict), code)

	rec = do(t, r, nethttp.MethodDelete, "/api/courses/"+courseID+"?force=maybe", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = do(t, r, nethttp.MethodDelete, "/api/courses/"+courseID+"?force=true", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode(t, rec)["tasks_deleted"])

	rec = do(t, r, nethttp.MethodGet, "/api/courses/"+courseID, token, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestCourseCreate_ValidationError(t *testing.T) {
	r := newTestRouter(t, true)
	rec := do(t, r, nethttp.MethodPost, "/api/courses", signToken(t, "alice"), map[string]any{"name": "  "})
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	msg, code := errorOf(t, rec)
	assert.Equal(t, string(app.ErrInvalidInput), code)
	assert.Contains(t, msg, "name")
}

func TestCoursesAreScopedToTokenSubject(t *testing.T) {
	r := newTestRouter(t, true)
	alice := signToken(t, "alice")
	bob := signToken(t, "bob")

	courseID := createCourse(t, r, alice, "Chemistry")

	rec := do(t, r, nethttp.MethodGet, "/api/courses/"+courseID, bob, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	rec = do(t, r, nethttp.MethodGet, "/api/courses", bob, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["courses"])
}

func TestTaskRoutes(t *testing.T) {
	r := newTestRouter(t, true)
	token := signToken(t, "alice")
	courseID := createCourse(t, r, token, "Physics")
	taskID := createTask(t, r, token, courseID, "Lab report", 3)
	createTask(t, r, token, courseID, "Reading", 1)

	rec := do(t, r, nethttp.MethodPost, "/api/tasks/"+taskID+"/done", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	done := decode(t, rec)
	assert.Equal(t, "done", done["status"])
	assert.NotEmpty(t, done["completed_at"])

	rec = do(t, r, nethttp.MethodGet, "/api/tasks?status=done&course_id="+courseID, token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	listed := decode(t, rec)["tasks"].([]any)
	require.Len(t, listed, 1)
	assert.Equal(t, "Lab report", listed[0].(map[string]any)["title"])

	rec = do(t, r, nethttp.MethodGet, "/api/tasks?status=finished", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = do(t, r, nethttp.MethodPut, "/api/tasks/"+taskID, token, map[string]any{"status": "todo", "title": "Lab report v2"})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	updated := decode(t, rec)
	assert.Equal(t, "Lab report v2", updated["title"])
	assert.Nil(t, updated["completed_at"])

	rec = do(t, r, nethttp.MethodDelete, "/api/tasks/"+taskID, token, nil)
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	rec = do(t, r, nethttp.MethodGet, "/api/tasks/"+taskID, token, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestPlanRoutes(t *testing.T) {
	r := newTestRouter(t, true)
	token := signToken(t, "alice")

	rec := do(t, r, nethttp.MethodPost, "/api/plans/generate", token, map[string]any{"preferences": map[string]any{"dailyHours": 2}})
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	msg, _ := errorOf(t, rec)
	assert.Equal(t, app.MsgNoTasks, msg)

	courseID := createCourse(t, r, token, "Biology")
	createTask(t, r, token, courseID, "Cell diagram", 1)
	createTask(t, r, token, courseID, "Genetics quiz", 1.5)

	rec = do(t, r, nethttp.MethodPost, "/api/plans/generate", token, map[string]any{
		"preferences": map[string]any{"dailyHours": 3},
		"useAI":       false,
		"save":        true,
		"title":       "Week 1",
	})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	planID, _ := decode(t, rec)["savedPlanId"].(string)
	require.NotEmpty(t, planID)

	rec = do(t, r, nethttp.MethodGet, "/api/plans", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	listed := decode(t, rec)["plans"].([]any)
	require.Len(t, listed, 1)
	assert.Equal(t, "Week 1", listed[0].(map[string]any)["title"])

	rec = do(t, r, nethttp.MethodGet, "/api/plans/"+planID, token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.NotNil(t, decode(t, rec)["plan"])

	rec = do(t, r, nethttp.MethodPost, "/api/plans", token, map[string]any{"plan": map[string]any{"days": []any{}, "summary": "manual"}})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Untitled Plan", decode(t, rec)["title"])

	rec = do(t, r, nethttp.MethodDelete, "/api/plans/"+planID, token, nil)
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	rec = do(t, r, nethttp.MethodGet, "/api/plans/"+planID, token, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestCourseImport(t *testing.T) {
	r := newTestRouter(t, true)
	token := signToken(t, "alice")

	rec := do(t, r, nethttp.MethodPost, "/api/courses/import", token, map[string]any{
		"course": map[string]any{"name": "Statistics", "code": "STAT101"},
		"tasks": []map[string]any{
			{"title": "Chapter 1", "type": "reading"},
			{"title": "Homework 1", "due_date": "2030-02-01", "estimated_hours": 2},
		},
	})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.EqualValues(t, 2, body["task_count"])

	rec = do(t, r, nethttp.MethodPost, "/api/courses/import", token, map[string]any{
		"course": map[string]any{"name": ""},
	})
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	msg, _ := errorOf(t, rec)
	assert.Contains(t, msg, "import validation failed")
}
