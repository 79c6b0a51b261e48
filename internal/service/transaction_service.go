package service

import (
	"context"
	"strings"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/models"
	"github.com/SahO-ux/budget-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	defaultTransactionLimit = int64(20)
	maxTransactionLimit     = int64(20)
)

type transactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Transaction, error)
	List(ctx context.Context, filter *repository.TransactionFilter) ([]models.Transaction, int64, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, upd repository.TransactionUpdate) (bool, error)
	SoftDelete(ctx context.Context, userID, id primitive.ObjectID) (bool, error)
}

// TransactionListParams are the raw list filters as they arrive from
// the API layer; validation happens in List.
type TransactionListParams struct {
	Skip      int64
	Limit     int64
	Category  string
	Type      string
	MinAmount *float64
	MaxAmount *float64
	StartDate string
	EndDate   string
	SortBy    string
	SortDir   string
}

type TransactionService struct {
	transactions transactionStore
	categories   categoryStore
	logger       *zap.Logger
}

func NewTransactionService(transactions transactionStore, categories categoryStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		categories:   categories,
		logger:       logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}
	if req.Amount <= 0 {
		return nil, validationErrorf("amount must be positive")
	}

	entryType := models.EntryType(req.Type)
	if !models.ValidEntryType(entryType) {
		return nil, validationErrorf("invalid transaction type %q", req.Type)
	}

	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, validationErrorf("invalid category id %q", req.Category)
	}

	category, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, validationErrorf("category %s does not exist", req.Category)
	}
	if category.Type != entryType {
		return nil, validationErrorf("transaction type %q does not match category type %q", entryType, category.Type)
	}

	now := time.Now().UTC()
	tx := &models.Transaction{
		UserID:     userID,
		Amount:     req.Amount,
		Type:       entryType,
		CategoryID: categoryID,
		Note:       strings.TrimSpace(req.Note),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	// Re-read with the category joined in, like every other read path.
	created, err := s.transactions.GetByID(ctx, userID, tx.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = tx
		created.CategoryName = category.Name
		created.CategoryType = category.Type
	}

	resp := dto.NewTransactionResponse(created)
	return &resp, nil
}

func (s *TransactionService) List(ctx context.Context, userID primitive.ObjectID, params *TransactionListParams) (*dto.TransactionListResponse, error) {
	filter, err := s.buildFilter(userID, params)
	if err != nil {
		return nil, err
	}

	txs, total, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		results = append(results, dto.NewTransactionResponse(&txs[i]))
	}

	return &dto.TransactionListResponse{
		Results: results,
		Count:   len(results),
		Total:   total,
	}, nil
}

func (s *TransactionService) buildFilter(userID primitive.ObjectID, params *TransactionListParams) (*repository.TransactionFilter, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}
	if params.Skip < 0 {
		return nil, validationErrorf("skip must be non-negative")
	}
	if params.MinAmount != nil && params.MaxAmount != nil && *params.MinAmount > *params.MaxAmount {
		return nil, validationErrorf("minAmount cannot be greater than maxAmount")
	}

	limit := params.Limit
	if limit <= 0 || limit > maxTransactionLimit {
		limit = defaultTransactionLimit
	}

	filter := &repository.TransactionFilter{
		UserID:    userID,
		MinAmount: params.MinAmount,
		MaxAmount: params.MaxAmount,
		Skip:      params.Skip,
		Limit:     limit,
	}

	if params.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(params.Category)
		if err != nil {
			return nil, validationErrorf("invalid category id %q", params.Category)
		}
		filter.CategoryID = &categoryID
	}

	if params.Type != "" {
		entryType := models.EntryType(params.Type)
		if !models.ValidEntryType(entryType) {
			return nil, validationErrorf("invalid transaction type %q", params.Type)
		}
		filter.Type = entryType
	}

	if params.StartDate != "" {
		start, err := parseDay(params.StartDate)
		if err != nil {
			return nil, validationErrorf("invalid startDate %q", params.StartDate)
		}
		filter.StartDate = &start
	}

	if params.EndDate != "" {
		day, err := parseDay(params.EndDate)
		if err != nil {
			return nil, validationErrorf("invalid endDate %q", params.EndDate)
		}
		// Inclusive to the end of the named day.
		end := day.AddDate(0, 0, 1).Add(-time.Millisecond)
		filter.EndDate = &end
	}

	sort, err := buildSort(params.SortBy, params.SortDir)
	if err != nil {
		return nil, err
	}
	filter.Sort = sort

	return filter, nil
}

// GetByID returns (nil, nil) when the transaction does not exist for
// the user.
func (s *TransactionService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*dto.TransactionResponse, error) {
	tx, err := s.transactions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

// Update re-validates the type/category pairing whenever either side
// changes. Returns (nil, nil) when the transaction does not exist.
func (s *TransactionService) Update(ctx context.Context, userID, id primitive.ObjectID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	existing, err := s.transactions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	upd := repository.TransactionUpdate{Note: req.Note}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, validationErrorf("amount must be positive")
		}
		upd.Amount = req.Amount
	}

	effectiveType := existing.Type
	if req.Type != nil {
		entryType := models.EntryType(*req.Type)
		if !models.ValidEntryType(entryType) {
			return nil, validationErrorf("invalid transaction type %q", *req.Type)
		}
		effectiveType = entryType
		upd.Type = &entryType
	}

	effectiveCategoryID := existing.CategoryID
	if req.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			return nil, validationErrorf("invalid category id %q", *req.Category)
		}
		effectiveCategoryID = categoryID
		upd.CategoryID = &categoryID
	}

	if req.Type != nil || req.Category != nil {
		category, err := s.categories.GetByID(ctx, userID, effectiveCategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, validationErrorf("category %s does not exist", effectiveCategoryID.Hex())
		}
		if category.Type != effectiveType {
			return nil, validationErrorf("transaction type %q does not match category type %q", effectiveType, category.Type)
		}
	}

	matched, err := s.transactions.Update(ctx, userID, id, upd)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}

	return s.GetByID(ctx, userID, id)
}

// Delete soft-deletes; reports whether the transaction existed. Earlier
// aggregation results are unaffected, only future reads drop the row.
func (s *TransactionService) Delete(ctx context.Context, userID, id primitive.ObjectID) (bool, error) {
	return s.transactions.SoftDelete(ctx, userID, id)
}

func buildSort(sortBy, sortDir string) (bson.D, error) {
	if sortBy == "" {
		return nil, nil
	}

	switch sortBy {
	case "createdAt", "amount":
	default:
		return nil, validationErrorf("cannot sort by %q", sortBy)
	}

	order := -1
	if sortDir == "asc" {
		order = 1
	}
	return bson.D{{Key: sortBy, Value: order}}, nil
}

// parseDay accepts a date ("2006-01-02") or an RFC 3339 timestamp and
// truncates it to the start of its UTC day.
func parseDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}

	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
