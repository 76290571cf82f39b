package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// Goal provides CRUD over an account's savings goals.
type Goal struct {
	goals  model.GoalStore
	logger *logger.Logger
}

// NewGoal creates a new Goal service.
func NewGoal(goals model.GoalStore, logger *logger.Logger) *Goal {
	return &Goal{
		goals:  goals,
		logger: logger,
	}
}

// CreateGoalParams carries validated input for creating a goal.
type CreateGoalParams struct {
	AccountID       uuid.UUID
	TargetAmount    float64
	CurrentProgress float64
	Deadline        time.Time
}

// Create persists a new goal owned by the account.
func (s *Goal) Create(ctx context.Context, params CreateGoalParams) (model.Goal, error) {
	if params.TargetAmount <= 0 {
		return model.Goal{}, model.NewValidationError("target_amount", "must be greater than zero")
	}
	if params.CurrentProgress < 0 {
		return model.Goal{}, model.NewValidationError("current_progress", "must not be negative")
	}
	if params.Deadline.IsZero() {
		return model.Goal{}, model.NewValidationError("deadline", "is required")
	}

	now := time.Now()
	created, err := s.goals.Create(ctx, model.Goal{
		ID:              uuid.New(),
		AccountID:       params.AccountID,
		TargetAmount:    params.TargetAmount,
		CurrentProgress: params.CurrentProgress,
		Deadline:        params.Deadline,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	s.logger.Info("Goal service: created", "goal_id", created.ID, "account_id", params.AccountID)
	return created, nil
}

// Get returns a single goal owned by the account.
func (s *Goal) Get(ctx context.Context, accountID, id uuid.UUID) (model.Goal, error) {
	goal, err := s.goals.GetByID(ctx, accountID, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Goal{}, model.ErrNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// List returns every goal owned by the account.
func (s *Goal) List(ctx context.Context, accountID uuid.UUID) ([]model.Goal, error) {
	goals, err := s.goals.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// Update applies a partial update to an owned goal.
func (s *Goal) Update(ctx context.Context, accountID, id uuid.UUID, params model.UpdateGoalParams) (model.Goal, error) {
	if params.Empty() {
		return model.Goal{}, model.NewValidationError("body", "at least one field is required")
	}

	goal, err := s.goals.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}

	if params.TargetAmount != nil {
		if *params.TargetAmount <= 0 {
			return model.Goal{}, model.NewValidationError("target_amount", "must be greater than zero")
		}
		goal.TargetAmount = *params.TargetAmount
	}
	if params.CurrentProgress != nil {
		if *params.CurrentProgress < 0 {
			return model.Goal{}, model.NewValidationError("current_progress", "must not be negative")
		}
		goal.CurrentProgress = *params.CurrentProgress
	}
	if params.Deadline != nil {
		goal.Deadline = *params.Deadline
	}
	goal.UpdatedAt = time.Now()

	updated, err := s.goals.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}
	return updated, nil
}

// Delete removes an owned goal.
func (s *Goal) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	if err := s.goals.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	s.logger.Info("Goal service: deleted", "goal_id", id, "account_id", accountID)
	return nil
}
