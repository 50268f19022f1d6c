package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// SQLitePlanRepo stores generated plans as JSON documents.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.SavedPlan) error {
	body, err := json.Marshal(p.Plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plans (id, user_id, title, plan_json, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Title, string(body), formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, userID, id string) (*domain.SavedPlan, error) {
	var p domain.SavedPlan
	var body, createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, plan_json, created_at FROM plans WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&p.ID, &p.UserID, &p.Title, &body, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	if err := json.Unmarshal([]byte(body), &p.Plan); err != nil {
		return nil, fmt.Errorf("decoding plan %s: %w", id, err)
	}
	if p.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePlanRepo) ListByUser(ctx context.Context, userID string) ([]domain.PlanSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, COALESCE(json_array_length(plan_json, '$.days'), 0), created_at
		FROM plans WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.PlanSummary{}
	for rows.Next() {
		var s domain.PlanSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Title, &s.DayCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		plans = append(plans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return requireAffected(res, "plan")
}
