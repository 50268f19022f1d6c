package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Reads join the
// owning course so CourseName is always populated.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskSelect = `SELECT t.id, t.user_id, t.course_id, c.name, t.title, t.description, t.type, t.status,
		t.priority, t.due_date, t.estimated_hours, t.created_at, t.updated_at, t.completed_at
	FROM tasks t JOIN courses c ON c.id = t.course_id`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, user_id, course_id, title, description, type, status, priority,
		due_date, estimated_hours, created_at, updated_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.CourseID,
		t.Title,
		t.Description,
		string(t.Type),
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.DueDate),
		nullableFloat(t.EstimatedHours),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
		nullableTimeToString(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, taskSelect+` WHERE t.id = ? AND t.user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %w", ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string, filter TaskFilter) ([]*domain.Task, error) {
	where := []string{"t.user_id = ?"}
	args := []any{userID}
	if filter.CourseID != "" {
		where = append(where, "t.course_id = ?")
		args = append(args, filter.CourseID)
	}
	if filter.Status != "" {
		where = append(where, "t.status = ?")
		args = append(args, string(filter.Status))
	}
	query := taskSelect + ` WHERE ` + strings.Join(where, " AND ") + ` ORDER BY t.due_date IS NULL, t.due_date, t.created_at`
	return r.list(ctx, query, args...)
}

func (r *SQLiteTaskRepo) ListSchedulable(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := taskSelect + ` WHERE t.user_id = ? AND t.status != 'done' ORDER BY t.created_at, t.rowid`
	return r.list(ctx, query, userID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET course_id = ?, title = ?, description = ?, type = ?, status = ?, priority = ?,
		due_date = ?, estimated_hours = ?, updated_at = ?, completed_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.CourseID,
		t.Title,
		t.Description,
		string(t.Type),
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.DueDate),
		nullableFloat(t.EstimatedHours),
		formatTime(t.UpdatedAt),
		nullableTimeToString(t.CompletedAt),
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) DeleteByCourse(ctx context.Context, userID, courseID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE course_id = ? AND user_id = ?`, courseID, userID)
	if err != nil {
		return 0, fmt.Errorf("deleting course tasks: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteTaskRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	var taskType, status, priority, createdAt, updatedAt string
	var dueDate, completedAt sql.NullString
	var hours sql.NullFloat64

	err := row.Scan(
		&t.ID, &t.UserID, &t.CourseID, &t.CourseName, &t.Title, &t.Description,
		&taskType, &status, &priority,
		&dueDate, &hours,
		&createdAt, &updatedAt, &completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Type = domain.TaskType(taskType)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	t.DueDate = parseNullableTime(dueDate)
	t.EstimatedHours = floatPtr(hours)
	t.CompletedAt = parseNullableTime(completedAt)

	if t.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
