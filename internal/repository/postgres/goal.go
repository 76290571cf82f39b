package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

var _ model.GoalStore = (*GoalRepository)(nil)

type GoalRepository struct {
	db *Connection
}

func NewGoalRepository(db *Connection) *GoalRepository {
	return &GoalRepository{
		db: db,
	}
}

const goalColumns = `id, account_id, target_amount, current_progress, deadline, created_at, updated_at`

func scanGoal(row pgx.Row) (model.Goal, error) {
	var goal model.Goal
	err := row.Scan(
		&goal.ID, &goal.AccountID, &goal.TargetAmount, &goal.CurrentProgress,
		&goal.Deadline, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

func (r *GoalRepository) Create(ctx context.Context, goal model.Goal) (model.Goal, error) {
	query := `INSERT INTO goals (id, account_id, target_amount, current_progress, deadline, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + goalColumns

	saved, err := scanGoal(r.db.QueryRow(ctx, query,
		goal.ID, goal.AccountID, goal.TargetAmount, goal.CurrentProgress,
		goal.Deadline, goal.CreatedAt, goal.UpdatedAt,
	))
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}
	return saved, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, accountID, id uuid.UUID) (model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND account_id = $2`

	goal, err := scanGoal(r.db.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

func (r *GoalRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE account_id = $1 ORDER BY deadline`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal model.Goal) (model.Goal, error) {
	query := `UPDATE goals
			  SET target_amount = $3, current_progress = $4, deadline = $5, updated_at = $6
			  WHERE id = $1 AND account_id = $2
			  RETURNING ` + goalColumns

	saved, err := scanGoal(r.db.QueryRow(ctx, query,
		goal.ID, goal.AccountID, goal.TargetAmount, goal.CurrentProgress,
		goal.Deadline, goal.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}
	return saved, nil
}

func (r *GoalRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
