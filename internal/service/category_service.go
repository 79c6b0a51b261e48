package service

import (
	"context"
	"strings"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/models"
	"github.com/SahO-ux/budget-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	defaultCategoryLimit = int64(50)
	maxCategoryLimit     = int64(50)
)

type categoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByName(ctx context.Context, userID primitive.ObjectID, name string) (*models.Category, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*models.Category, error)
	List(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.Category, int64, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, upd repository.CategoryUpdate) (*models.Category, error)
	SoftDelete(ctx context.Context, userID, id primitive.ObjectID) (bool, error)
}

type CategoryService struct {
	categories categoryStore
	logger     *zap.Logger
}

func NewCategoryService(categories categoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErrorf("category name is required")
	}

	entryType := models.EntryType(req.Type)
	if !models.ValidEntryType(entryType) {
		return nil, validationErrorf("invalid category type %q", req.Type)
	}

	existing, err := s.categories.GetByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	now := time.Now().UTC()
	category := &models.Category{
		UserID:    userID,
		Name:      name,
		Type:      entryType,
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) List(ctx context.Context, userID primitive.ObjectID, skip, limit int64) (*dto.CategoryListResponse, error) {
	if userID.IsZero() {
		return nil, validationErrorf("missing userId")
	}
	if skip < 0 {
		return nil, validationErrorf("skip must be non-negative")
	}
	if limit <= 0 || limit > maxCategoryLimit {
		limit = defaultCategoryLimit
	}

	categories, total, err := s.categories.List(ctx, userID, skip, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		results = append(results, dto.NewCategoryResponse(&categories[i]))
	}

	return &dto.CategoryListResponse{Results: results, Total: total}, nil
}

// GetByID returns (nil, nil) when the category does not exist for the user.
func (s *CategoryService) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*dto.CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// Update returns (nil, nil) when the category does not exist for the user.
func (s *CategoryService) Update(ctx context.Context, userID, id primitive.ObjectID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	upd := repository.CategoryUpdate{Color: req.Color}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, validationErrorf("category name cannot be empty")
		}

		existing, err := s.categories.GetByName(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrCategoryExists
		}

		upd.Name = &name
	}

	if req.Type != nil {
		entryType := models.EntryType(*req.Type)
		if !models.ValidEntryType(entryType) {
			return nil, validationErrorf("invalid category type %q", *req.Type)
		}
		upd.Type = &entryType
	}

	category, err := s.categories.Update(ctx, userID, id, upd)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// Delete soft-deletes; reports whether the category existed.
func (s *CategoryService) Delete(ctx context.Context, userID, id primitive.ObjectID) (bool, error) {
	return s.categories.SoftDelete(ctx, userID, id)
}
