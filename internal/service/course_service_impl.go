package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

type courseService struct {
	courses  repository.CourseRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCourseService(courses repository.CourseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) app.CourseUseCase {
	return &courseService{
		courses:  courses,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *courseService) Create(ctx context.Context, userID string, in app.CourseInput) (*domain.Course, error) {
	if err := app.ValidateStruct(in); err != nil {
		return nil, err
	}
	now := nowUTC()
	c := &domain.Course{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               strings.TrimSpace(in.Name),
		Code:               strings.TrimSpace(in.Code),
		Color:              in.Color,
		TargetHoursPerWeek: in.TargetHoursPerWeek,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := c.Validate(); err != nil {
		return nil, app.InvalidInput("%s", err.Error())
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) Get(ctx context.Context, userID, id string) (*domain.Course, error) {
	c, err := s.courses.GetByID(ctx, userID, id)
	if err != nil {
		return nil, notFoundAs("course", err)
	}
	return c, nil
}

func (s *courseService) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	return s.courses.ListByUser(ctx, userID)
}

func (s *courseService) Update(ctx context.Context, userID, id string, patch app.CoursePatch) (*domain.Course, error) {
	if err := app.ValidateStruct(patch); err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		c.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Code != nil {
		c.Code = strings.TrimSpace(*patch.Code)
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.TargetHoursPerWeek != nil {
		c.TargetHoursPerWeek = patch.TargetHoursPerWeek
	}
	if err := c.Validate(); err != nil {
		return nil, app.InvalidInput("%s", err.Error())
	}
	c.UpdatedAt = nowUTC()
	if err := s.courses.Update(ctx, c); err != nil {
		return nil, notFoundAs("course", err)
	}
	return c, nil
}

func (s *courseService) Delete(ctx context.Context, userID, id string, force bool) (result *app.CourseDeleteResult, err error) {
	fields := map[string]any{"course_id": id, "force": force}
	defer observe(ctx, s.observer, "delete-course", time.Now(), fields, &err)

	result = &app.CourseDeleteResult{CourseID: id}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		c, err := txCourses.GetByID(ctx, userID, id)
		if err != nil {
			return notFoundAs("course", err)
		}
		n, err := txCourses.CountTasks(ctx, userID, id)
		if err != nil {
			return err
		}
		if n > 0 && !force {
			return app.Conflict("course %q still has %d task(s); delete with force to remove them too", c.Name, n)
		}
		if n > 0 {
			if result.TasksDeleted, err = txTasks.DeleteByCourse(ctx, userID, id); err != nil {
				return err
			}
		}
		return notFoundAs("course", txCourses.Delete(ctx, userID, id))
	})
	if err != nil {
		return nil, err
	}
	fields["tasks_deleted"] = result.TasksDeleted
	return result, nil
}
