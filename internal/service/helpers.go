package service

import (
	"errors"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/repository"
)

// notFoundAs turns a repository miss into a NOT_FOUND PlanError and passes
// every other error through.
func notFoundAs(entity string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return app.NotFound(entity, err)
	}
	return err
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
