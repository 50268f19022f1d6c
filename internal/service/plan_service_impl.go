package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/platform/logger"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/google/uuid"
)

type buildFunc func(tasks []domain.Task, dailyHours float64, now time.Time, policy scheduler.Policy) (*domain.GeneratedPlan, scheduler.Allocation)

type planService struct {
	buildPlan buildFunc
	tasks     repository.TaskRepo
	plans     repository.PlanRepo
	enhancer  intelligence.EnhanceService
	policy    scheduler.Policy
	log       *logger.Logger
	observer  UseCaseObserver
}

// NewPlanService wires plan generation and storage. enhancer may be nil, in
// which case plans are always returned as computed.
func NewPlanService(
	tasks repository.TaskRepo,
	plans repository.PlanRepo,
	enhancer intelligence.EnhanceService,
	policy scheduler.Policy,
	log *logger.Logger,
	observers ...UseCaseObserver,
) app.PlanUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &planService{
		buildPlan: scheduler.BuildPlan,
		tasks:     tasks,
		plans:     plans,
		enhancer:  enhancer,
		policy:    policy,
		log:       log,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req app.GeneratePlanRequest) (resp *app.GeneratePlanResponse, err error) {
	fields := map[string]any{"task_count": len(req.Tasks)}
	defer observe(ctx, s.observer, "generate-plan", time.Now(), fields, &err)

	resp, err = s.generate(ctx, req)
	if err == nil {
		fields["day_count"] = len(resp.Plan.Days)
		fields["enhanced"] = resp.Enhanced
		fields["unassigned"] = len(resp.Unassigned)
	}
	return resp, err
}

func (s *planService) generate(ctx context.Context, req app.GeneratePlanRequest) (*app.GeneratePlanResponse, error) {
	v, err := app.ValidateGeneratePlanRequest(req)
	if err != nil {
		return nil, err
	}

	plan, alloc, err := s.build(v)
	if err != nil {
		s.log.Error("plan generation failed", "error", err)
		return nil, err
	}

	enhanced := false
	if v.UseAI && s.enhancer != nil {
		plan, enhanced = s.enhance(ctx, plan)
	}

	resp := &app.GeneratePlanResponse{Plan: plan, Enhanced: enhanced}
	for _, t := range alloc.Unassigned {
		resp.Unassigned = append(resp.Unassigned, t.Title)
	}
	return resp, nil
}

// build runs the deterministic pipeline. A panic inside it is reported as
// an internal error and no partial plan is returned.
func (s *planService) build(v *app.ValidatedPlanRequest) (plan *domain.GeneratedPlan, alloc scheduler.Allocation, err error) {
	defer func() {
		if r := recover(); r != nil {
			plan, alloc = nil, scheduler.Allocation{}
			err = app.Internal(app.MsgGenerationFailed, fmt.Errorf("scheduler panic: %v", r))
		}
	}()
	plan, alloc = s.buildPlan(v.Tasks, v.DailyHours, v.Now, s.policy)
	return plan, alloc, nil
}

// enhance never fails: any problem, including a panic, keeps the base plan.
func (s *planService) enhance(ctx context.Context, base *domain.GeneratedPlan) (plan *domain.GeneratedPlan, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("plan enhancement panicked", "panic", fmt.Sprint(r))
			plan, ok = base, false
		}
	}()
	return s.enhancer.Enhance(ctx, base)
}

func (s *planService) GenerateForUser(ctx context.Context, req app.GenerateForUserRequest) (resp *app.GeneratePlanResponse, err error) {
	fields := map[string]any{"save": req.Save}
	defer observe(ctx, s.observer, "generate-plan-for-user", time.Now(), fields, &err)

	if err = app.ValidateStruct(req); err != nil {
		return nil, err
	}
	stored, err := s.tasks.ListSchedulable(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	fields["task_count"] = len(stored)

	genReq := app.GeneratePlanRequest{
		Tasks:       make([]app.PlanTaskInput, 0, len(stored)),
		Preferences: req.Preferences,
		UseAI:       req.UseAI,
		Now:         req.Now,
	}
	for _, t := range stored {
		genReq.Tasks = append(genReq.Tasks, planInputFromTask(t))
	}

	resp, err = s.generate(ctx, genReq)
	if err != nil {
		return nil, err
	}
	if req.Save {
		saved, err := s.Save(ctx, req.UserID, app.SavePlanInput{Title: req.Title, Plan: resp.Plan})
		if err != nil {
			return nil, err
		}
		resp.SavedPlanID = saved.ID
	}
	return resp, nil
}

func planInputFromTask(t *domain.Task) app.PlanTaskInput {
	in := app.PlanTaskInput{
		ID:             t.ID,
		Title:          t.Title,
		CourseID:       t.CourseID,
		CourseName:     t.CourseName,
		EstimatedHours: t.EstimatedHours,
		Priority:       string(t.Priority),
	}
	if t.DueDate != nil {
		in.DueDate = t.DueDate.UTC().Format(time.RFC3339)
	}
	return in
}

func (s *planService) Save(ctx context.Context, userID string, in app.SavePlanInput) (*domain.SavedPlan, error) {
	if err := app.ValidateStruct(in); err != nil {
		return nil, err
	}
	saved := &domain.SavedPlan{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     domain.CoalesceStr(strings.TrimSpace(in.Title), domain.DefaultPlanTitle),
		Plan:      *in.Plan,
		CreatedAt: nowUTC(),
	}
	if err := s.plans.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *planService) List(ctx context.Context, userID string) ([]domain.PlanSummary, error) {
	return s.plans.ListByUser(ctx, userID)
}

func (s *planService) Get(ctx context.Context, userID, id string) (*domain.SavedPlan, error) {
	p, err := s.plans.GetByID(ctx, userID, id)
	if err != nil {
		return nil, notFoundAs("plan", err)
	}
	return p, nil
}

func (s *planService) Delete(ctx context.Context, userID, id string) error {
	return notFoundAs("plan", s.plans.Delete(ctx, userID, id))
}
