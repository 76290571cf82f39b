package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// accountResponse is the public view of an account. Password hashes and
// external identity ids never leave the server.
type accountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func toAccountResponse(account model.Account) accountResponse {
	return accountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}
}

type tokenResponse struct {
	Token string          `json:"token"`
	User  accountResponse `json:"user"`
}

type transactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      float64         `json:"amount"`
	Type        model.EntryType `json:"type"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurred_at"`
	HasReceipt  bool            `json:"has_receipt"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toTransactionResponse(transaction model.Transaction) transactionResponse {
	return transactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		CategoryID:  transaction.CategoryID,
		Description: transaction.Description,
		OccurredAt:  transaction.OccurredAt,
		HasReceipt:  transaction.ReceiptKey != "",
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

type categoryResponse struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Type   model.EntryType `json:"type"`
	Global bool            `json:"global"`
}

func toCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Type:   category.Type,
		Global: category.AccountID == nil,
	}
}

type goalResponse struct {
	ID              uuid.UUID `json:"id"`
	TargetAmount    float64   `json:"target_amount"`
	CurrentProgress float64   `json:"current_progress"`
	Deadline        time.Time `json:"deadline"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toGoalResponse(goal model.Goal) goalResponse {
	return goalResponse{
		ID:              goal.ID,
		TargetAmount:    goal.TargetAmount,
		CurrentProgress: goal.CurrentProgress,
		Deadline:        goal.Deadline,
		CreatedAt:       goal.CreatedAt,
		UpdatedAt:       goal.UpdatedAt,
	}
}
