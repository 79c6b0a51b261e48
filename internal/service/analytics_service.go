package service

import (
	"context"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// transactionAggregator is the rollup surface of the transaction store.
type transactionAggregator interface {
	CategorySummary(ctx context.Context, userID primitive.ObjectID) ([]models.CategorySummary, error)
	MonthlySummary(ctx context.Context, userID primitive.ObjectID) ([]models.MonthlyGroupRow, error)
	SumAmountByType(ctx context.Context, userID primitive.ObjectID, entryType models.EntryType, start, end time.Time) (float64, error)
}

type AnalyticsService struct {
	aggregator transactionAggregator
	logger     *zap.Logger
}

func NewAnalyticsService(aggregator transactionAggregator, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		aggregator: aggregator,
		logger:     logger,
	}
}

// GetAnalytics returns both rollups over the user's entire history.
// Empty history yields empty arrays, not an error.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID primitive.ObjectID) (*dto.AnalyticsResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}

	categoryRows, err := s.aggregator.CategorySummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthRows, err := s.aggregator.MonthlySummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		CategorySummary: toCategorySummaryRows(categoryRows),
		MonthlySummary:  toMonthSummaryRows(monthRows),
	}, nil
}
