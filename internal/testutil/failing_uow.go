package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/studyplan/internal/db"
)

// FaultyUoW runs transactions through the real SQLite unit of work but makes
// write number FailAt (1-based) inside each transaction return Err. Queries
// are not counted.
type FaultyUoW struct {
	inner  db.UnitOfWork
	FailAt int
	Err    error
}

func NewFaultyUoW(database *sql.DB, failAt int, err error) *FaultyUoW {
	return &FaultyUoW{inner: db.NewSQLiteUnitOfWork(database), FailAt: failAt, Err: err}
}

func (u *FaultyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyTx{DBTX: tx, failAt: u.FailAt, err: u.Err})
	})
}

type faultyTx struct {
	db.DBTX
	writes int
	failAt int
	err    error
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failAt {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
