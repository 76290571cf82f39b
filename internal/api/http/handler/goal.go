package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
	"github.com/oghenefuyereo/spendwise-api/internal/service"
)

// GoalService provides savings goal CRUD.
type GoalService interface {
	Create(ctx context.Context, params service.CreateGoalParams) (model.Goal, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (model.Goal, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Goal, error)
	Update(ctx context.Context, accountID, id uuid.UUID, params model.UpdateGoalParams) (model.Goal, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

// Goal handles the savings goal endpoints.
type Goal struct {
	goalService    GoalService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewGoal creates a new Goal handler.
func NewGoal(goalService GoalService, contextManager model.ContextManager, logger *logger.Logger) *Goal {
	return &Goal{
		goalService:    goalService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Goal) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	accountID, ok := h.contextManager.GetAccountID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authorization token required")
	}
	return accountID, ok
}

type createGoalRequest struct {
	TargetAmount    float64   `json:"target_amount"`
	CurrentProgress float64   `json:"current_progress"`
	Deadline        time.Time `json:"deadline"`
}

// Create adds a savings goal owned by the caller.
func (h *Goal) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.goalService.Create(r.Context(), service.CreateGoalParams{
		AccountID:       accountID,
		TargetAmount:    req.TargetAmount,
		CurrentProgress: req.CurrentProgress,
		Deadline:        req.Deadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(goal))
}

// List returns the caller's goals.
func (h *Goal) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}

	goals, err := h.goalService.List(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		response = append(response, toGoalResponse(goal))
	}
	writeJSON(w, http.StatusOK, response)
}

// Get returns a single owned goal.
func (h *Goal) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	goal, err := h.goalService.Get(r.Context(), accountID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

type updateGoalRequest struct {
	TargetAmount    *float64   `json:"target_amount"`
	CurrentProgress *float64   `json:"current_progress"`
	Deadline        *time.Time `json:"deadline"`
}

// Update applies a partial update to an owned goal.
func (h *Goal) Update(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.goalService.Update(r.Context(), accountID, id, model.UpdateGoalParams{
		TargetAmount:    req.TargetAmount,
		CurrentProgress: req.CurrentProgress,
		Deadline:        req.Deadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

// Delete removes an owned goal.
func (h *Goal) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.goalService.Delete(r.Context(), accountID, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "goal deleted successfully")
}
