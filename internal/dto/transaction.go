package dto

import (
	"time"

	"github.com/SahO-ux/budget-tracker/internal/models"
)

type CreateTransactionRequest struct {
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

type UpdateTransactionRequest struct {
	Amount   *float64 `json:"amount"`
	Type     *string  `json:"type"`
	Category *string  `json:"category"`
	Note     *string  `json:"note"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type TransactionResponse struct {
	ID        string      `json:"id"`
	Amount    float64     `json:"amount"`
	Type      string      `json:"type"`
	Category  CategoryRef `json:"category"`
	Note      string      `json:"note"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type TransactionListResponse struct {
	Results []TransactionResponse `json:"results"`
	Count   int                   `json:"count"`
	Total   int64                 `json:"total"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:     tx.ID.Hex(),
		Amount: tx.Amount,
		Type:   string(tx.Type),
		Category: CategoryRef{
			ID:   tx.CategoryID.Hex(),
			Name: tx.CategoryName,
			Type: string(tx.CategoryType),
		},
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: tx.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
