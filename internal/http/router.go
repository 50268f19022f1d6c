package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/studyplan/internal/app"
	httpH "github.com/alexanderramin/studyplan/internal/http/handlers"
	httpMW "github.com/alexanderramin/studyplan/internal/http/middleware"
	"github.com/alexanderramin/studyplan/internal/http/response"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	HealthHandler *httpH.HealthHandler
	AIHandler     *httpH.AIHandler

	// AuthMiddleware gates every storage route. When nil those routes are
	// not registered at all.
	AuthMiddleware *httpMW.AuthMiddleware
	CourseHandler  *httpH.CourseHandler
	TaskHandler    *httpH.TaskHandler
	PlanHandler    *httpH.PlanHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if cfg.Log != nil {
			cfg.Log.Error("panic serving request", "path", c.Request.URL.Path, "panic", recovered)
		}
		response.RespondMessage(c, nethttp.StatusInternalServerError, string(app.ErrInternal), response.MsgInternal)
		c.Abort()
	}))
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// AI (public, stateless)
		if cfg.AIHandler != nil {
			api.POST("/ai/plan", cfg.AIHandler.GeneratePlan)
			api.POST("/ai/explain", cfg.AIHandler.ExplainBlock)
		}
	}

	if cfg.AuthMiddleware == nil {
		return r
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Courses
		if cfg.CourseHandler != nil {
			protected.GET("/courses", cfg.CourseHandler.List)
			protected.POST("/courses", cfg.CourseHandler.Create)
			protected.POST("/courses/import", cfg.CourseHandler.Import)
			protected.GET("/courses/:id", cfg.CourseHandler.Get)
			protected.PUT("/courses/:id", cfg.CourseHandler.Update)
			protected.DELETE("/courses/:id", cfg.CourseHandler.Delete)
		}

		// Tasks
		if cfg.TaskHandler != nil {
			protected.GET("/tasks", cfg.TaskHandler.List)
			protected.POST("/tasks", cfg.TaskHandler.Create)
			protected.GET("/tasks/:id", cfg.TaskHandler.Get)
			protected.PUT("/tasks/:id", cfg.TaskHandler.Update)
			protected.DELETE("/tasks/:id", cfg.TaskHandler.Delete)
			protected.POST("/tasks/:id/done", cfg.TaskHandler.MarkDone)
		}

		// Plans
		if cfg.PlanHandler != nil {
			protected.POST("/plans/generate", cfg.PlanHandler.Generate)
			protected.POST("/plans", cfg.PlanHandler.Save)
			protected.GET("/plans", cfg.PlanHandler.List)
			protected.GET("/plans/:id", cfg.PlanHandler.Get)
			protected.DELETE("/plans/:id", cfg.PlanHandler.Delete)
		}
	}

	return r
}
