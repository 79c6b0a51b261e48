package dto

import (
	"time"

	"github.com/SahO-ux/budget-tracker/internal/models"
)

type SetBudgetRequest struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type BudgetResponse struct {
	ID        string  `json:"id"`
	Month     string  `json:"month"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type BudgetListResponse struct {
	Results []BudgetResponse `json:"results"`
	Total   int64            `json:"total"`
}

// BudgetMonthResponse merges the month's cap with the aggregated
// income/expense totals of the same window.
type BudgetMonthResponse struct {
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
	Income float64 `json:"income"`
	Month  string  `json:"month"`
}

func NewBudgetResponse(b *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.Hex(),
		Month:     b.Month,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
