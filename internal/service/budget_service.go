package service

import (
	"context"

	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	defaultBudgetLimit = int64(20)
	maxBudgetLimit     = int64(20)
)

type budgetStore interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, month string, amount float64) (*models.Budget, error)
	GetByMonth(ctx context.Context, userID primitive.ObjectID, month string) (*models.Budget, error)
	List(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.Budget, int64, error)
}

type BudgetService struct {
	budgets    budgetStore
	aggregator transactionAggregator
	logger     *zap.Logger
}

func NewBudgetService(budgets budgetStore, aggregator transactionAggregator, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgets:    budgets,
		aggregator: aggregator,
		logger:     logger,
	}
}

// SetBudget upserts the single cap for (user, month). Repeated calls
// with the same amount leave the stored state unchanged.
func (s *BudgetService) SetBudget(ctx context.Context, userID primitive.ObjectID, req *dto.SetBudgetRequest) (*dto.BudgetResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}
	if err := validateMonthKey(req.Month); err != nil {
		return nil, err
	}
	if req.Amount < 0 {
		return nil, validationErrorf("amount must be non-negative")
	}

	budget, err := s.budgets.Upsert(ctx, userID, req.Month, req.Amount)
	if err != nil {
		return nil, err
	}

	resp := dto.NewBudgetResponse(budget)
	return &resp, nil
}

// GetBudgetForMonth merges the month's cap (0 when none is set) with
// the expense and income totals of the same calendar window.
func (s *BudgetService) GetBudgetForMonth(ctx context.Context, userID primitive.ObjectID, month string) (*dto.BudgetMonthResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}

	start, end, err := monthWindow(month)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgets.GetByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	spent, err := s.aggregator.SumAmountByType(ctx, userID, models.TypeExpense, start, end)
	if err != nil {
		return nil, err
	}

	income, err := s.aggregator.SumAmountByType(ctx, userID, models.TypeIncome, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.BudgetMonthResponse{
		Spent:  spent,
		Income: income,
		Month:  month,
	}
	if budget != nil {
		resp.Budget = budget.Amount
	}
	return resp, nil
}

func (s *BudgetService) GetBudgets(ctx context.Context, userID primitive.ObjectID, skip, limit int64) (*dto.BudgetListResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}
	if skip < 0 {
		return nil, validationErrorf("skip must be non-negative")
	}
	if limit <= 0 || limit > maxBudgetLimit {
		limit = defaultBudgetLimit
	}

	budgets, total, err := s.budgets.List(ctx, userID, skip, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		results = append(results, dto.NewBudgetResponse(&budgets[i]))
	}

	return &dto.BudgetListResponse{Results: results, Total: total}, nil
}
