package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService creates a service that writes an imported course and its
// tasks in one transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) app.ImportCourseUseCase {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportCourse(ctx context.Context, userID, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, app.InvalidInput("loading import file: %v", err)
	}
	return s.importSchema(ctx, userID, schema)
}

func (s *importService) ImportCourseFromSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*app.ImportResult, error) {
	if schema == nil {
		return nil, app.InvalidInput("import document is empty")
	}
	return s.importSchema(ctx, userID, schema)
}

func (s *importService) importSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	fields := map[string]any{"course": schema.Course.Name, "task_count": len(schema.Tasks)}
	defer observe(ctx, s.observer, "import-course", time.Now(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(schema, userID)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCourses := repository.NewSQLiteCourseRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		if err := txCourses.Create(ctx, converted.Course); err != nil {
			return fmt.Errorf("creating course: %w", err)
		}
		for _, t := range converted.Tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &app.ImportResult{
		Course:    converted.Course,
		TaskCount: len(converted.Tasks),
	}, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return app.InvalidInput("%s", b.String())
}
