package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GoalStore defines persistence operations for savings goals, scoped by
// account id.
type GoalStore interface {
	Create(ctx context.Context, goal Goal) (Goal, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (Goal, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

// Goal represents a savings goal owned by an account.
type Goal struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	TargetAmount    float64
	CurrentProgress float64
	Deadline        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UpdateGoalParams carries partial input for updating a goal. Nil fields are
// left unchanged.
type UpdateGoalParams struct {
	TargetAmount    *float64
	CurrentProgress *float64
	Deadline        *time.Time
}

// Empty reports whether no field is set.
func (p UpdateGoalParams) Empty() bool {
	return p.TargetAmount == nil && p.CurrentProgress == nil && p.Deadline == nil
}
