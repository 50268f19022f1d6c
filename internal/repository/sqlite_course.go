package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(db db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

const courseColumns = `id, user_id, name, code, color, target_hours_per_week, created_at, updated_at`

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Code,
		c.Color,
		nullableFloat(c.TargetHoursPerWeek),
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, userID, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ? AND user_id = ?`
	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course %w", ErrNotFound)
	}
	return c, err
}

func (r *SQLiteCourseRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = ? ORDER BY created_at, name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	courses := []*domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses SET name = ?, code = ?, color = ?, target_hours_per_week = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Code,
		c.Color,
		nullableFloat(c.TargetHoursPerWeek),
		formatTime(c.UpdatedAt),
		c.ID,
		c.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return requireAffected(res, "course")
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return requireAffected(res, "course")
}

func (r *SQLiteCourseRepo) CountTasks(ctx context.Context, userID, id string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE course_id = ? AND user_id = ?`, id, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting course tasks: %w", err)
	}
	return n, nil
}

func scanCourse(row scanner) (*domain.Course, error) {
	var c domain.Course
	var target sql.NullFloat64
	var createdAt, updatedAt string

	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.Color, &target, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.TargetHoursPerWeek = floatPtr(target)

	var err error
	if c.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
