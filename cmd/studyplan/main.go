package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/db"
	httpapi "github.com/alexanderramin/studyplan/internal/http"
	httpH "github.com/alexanderramin/studyplan/internal/http/handlers"
	httpMW "github.com/alexanderramin/studyplan/internal/http/middleware"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Text generation is optional; without a key plans stay deterministic
	// and block explanations use the fallback text.
	var (
		enhancer intelligence.EnhanceService
		explain  = intelligence.NewExplainService(nil, log)
	)
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(log)
		}
		client := llm.NewChatClient(llmCfg, observer)
		enhancer = intelligence.NewEnhanceService(client, log)
		explain = intelligence.NewExplainService(client, log)
	}

	// Wire services
	useCaseObserver := service.NewLogUseCaseObserver(log)
	courseSvc := service.NewCourseService(courseRepo, uow, useCaseObserver)
	taskSvc := service.NewTaskService(taskRepo, courseRepo)
	planSvc := service.NewPlanService(taskRepo, planRepo, enhancer, cfg.Policy, log, useCaseObserver)
	importSvc := service.NewImportService(uow, useCaseObserver)

	if cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	routerCfg := httpapi.RouterConfig{
		Log:           log,
		CORSOrigins:   cfg.CORSOrigins,
		HealthHandler: httpH.NewHealthHandler(),
		AIHandler:     httpH.NewAIHandler(log, planSvc, explain),
	}
	if cfg.AuthEnabled() {
		routerCfg.AuthMiddleware = httpMW.NewAuthMiddleware(log, cfg.JWTSecret)
		routerCfg.CourseHandler = httpH.NewCourseHandler(log, courseSvc, importSvc)
		routerCfg.TaskHandler = httpH.NewTaskHandler(log, taskSvc)
		routerCfg.PlanHandler = httpH.NewPlanHandler(log, planSvc)
	} else {
		log.Info("STUDYPLAN_JWT_SECRET not set; storage API disabled")
	}

	formatter.SetColorEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	app := &cli.App{
		Courses:     courseSvc,
		Tasks:       taskSvc,
		Plans:       planSvc,
		Import:      importSvc,
		UserID:      cfg.UserID,
		DefaultAddr: cfg.Addr,
		Serve: func(ctx context.Context, addr string) error {
			return httpapi.NewServer(routerCfg).Run(ctx, addr)
		},
		// Detect interactive terminal for confirmation prompts.
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	// Execute root command
	return cli.NewRootCmd(app).Execute()
}
