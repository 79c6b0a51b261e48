package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/models"
	"github.com/SahO-ux/budget-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The fakes below emulate the documented record-store semantics
// (soft-delete filtering, upsert-by-key, grouped rollups) so the
// services can be exercised without a running database.

type fakeCategoryStore struct {
	categories map[primitive.ObjectID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[primitive.ObjectID]*models.Category{}}
}

func (f *fakeCategoryStore) add(userID primitive.ObjectID, name string, entryType models.EntryType) *models.Category {
	category := &models.Category{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Name:   name,
		Type:   entryType,
	}
	f.categories[category.ID] = category
	return category
}

func (f *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryStore) GetByName(_ context.Context, userID primitive.ObjectID, name string) (*models.Category, error) {
	for _, category := range f.categories {
		if category.UserID == userID && !category.IsDeleted && strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, userID, id primitive.ObjectID) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok || category.UserID != userID || category.IsDeleted {
		return nil, nil
	}
	return category, nil
}

func (f *fakeCategoryStore) List(_ context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.Category, int64, error) {
	matching := []models.Category{}
	for _, category := range f.categories {
		if category.UserID == userID && !category.IsDeleted {
			matching = append(matching, *category)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].Name < matching[j].Name })

	total := int64(len(matching))
	if skip >= total {
		return []models.Category{}, total, nil
	}
	matching = matching[skip:]
	if int64(len(matching)) > limit {
		matching = matching[:limit]
	}
	return matching, total, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, userID, id primitive.ObjectID, upd repository.CategoryUpdate) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok || category.UserID != userID || category.IsDeleted {
		return nil, nil
	}
	if upd.Name != nil {
		category.Name = *upd.Name
	}
	if upd.Type != nil {
		category.Type = *upd.Type
	}
	if upd.Color != nil {
		category.Color = *upd.Color
	}
	return category, nil
}

func (f *fakeCategoryStore) SoftDelete(_ context.Context, userID, id primitive.ObjectID) (bool, error) {
	category, ok := f.categories[id]
	if !ok || category.UserID != userID || category.IsDeleted {
		return false, nil
	}
	category.IsDeleted = true
	return true, nil
}

type fakeTransactionStore struct {
	transactions []*models.Transaction
	categories   *fakeCategoryStore
}

func newFakeTransactionStore(categories *fakeCategoryStore) *fakeTransactionStore {
	return &fakeTransactionStore{categories: categories}
}

func (f *fakeTransactionStore) add(userID primitive.ObjectID, amount float64, entryType models.EntryType, categoryID primitive.ObjectID, createdAt time.Time) *models.Transaction {
	tx := &models.Transaction{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Amount:     amount,
		Type:       entryType,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	f.transactions = append(f.transactions, tx)
	return tx
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	tx.ID = primitive.NewObjectID()
	clone := *tx
	f.transactions = append(f.transactions, &clone)
	return nil
}

func (f *fakeTransactionStore) joined(tx *models.Transaction) *models.Transaction {
	out := *tx
	if category, ok := f.categories.categories[tx.CategoryID]; ok {
		out.CategoryName = category.Name
		out.CategoryType = category.Type
	}
	return &out
}

func (f *fakeTransactionStore) GetByID(_ context.Context, userID, id primitive.ObjectID) (*models.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.UserID == userID && !tx.IsDeleted {
			return f.joined(tx), nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionStore) List(_ context.Context, filter *repository.TransactionFilter) ([]models.Transaction, int64, error) {
	matching := []*models.Transaction{}
	for _, tx := range f.transactions {
		if tx.UserID != filter.UserID || tx.IsDeleted {
			continue
		}
		if filter.CategoryID != nil && tx.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.MinAmount != nil && tx.Amount < *filter.MinAmount {
			continue
		}
		if filter.MaxAmount != nil && tx.Amount > *filter.MaxAmount {
			continue
		}
		if filter.StartDate != nil && tx.CreatedAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && tx.CreatedAt.After(*filter.EndDate) {
			continue
		}
		matching = append(matching, tx)
	}

	byAmount := len(filter.Sort) > 0 && filter.Sort[0].Key == "amount"
	asc := len(filter.Sort) > 0 && filter.Sort[0].Value == 1
	sort.SliceStable(matching, func(i, j int) bool {
		var less bool
		if byAmount {
			less = matching[i].Amount < matching[j].Amount
		} else {
			less = matching[i].CreatedAt.Before(matching[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	total := int64(len(matching))
	if filter.Skip >= total {
		matching = nil
	} else {
		matching = matching[filter.Skip:]
	}
	if filter.Limit > 0 && int64(len(matching)) > filter.Limit {
		matching = matching[:filter.Limit]
	}

	out := make([]models.Transaction, 0, len(matching))
	for _, tx := range matching {
		out = append(out, *f.joined(tx))
	}
	return out, total, nil
}

func (f *fakeTransactionStore) Update(_ context.Context, userID, id primitive.ObjectID, upd repository.TransactionUpdate) (bool, error) {
	for _, tx := range f.transactions {
		if tx.ID != id || tx.UserID != userID || tx.IsDeleted {
			continue
		}
		if upd.Amount != nil {
			tx.Amount = *upd.Amount
		}
		if upd.Type != nil {
			tx.Type = *upd.Type
		}
		if upd.CategoryID != nil {
			tx.CategoryID = *upd.CategoryID
		}
		if upd.Note != nil {
			tx.Note = *upd.Note
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeTransactionStore) SoftDelete(_ context.Context, userID, id primitive.ObjectID) (bool, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.UserID == userID && !tx.IsDeleted {
			tx.IsDeleted = true
			return true, nil
		}
	}
	return false, nil
}

// CategorySummary mirrors the store pipeline: group by category, sum,
// left-join the name, sort by total descending.
func (f *fakeTransactionStore) CategorySummary(_ context.Context, userID primitive.ObjectID) ([]models.CategorySummary, error) {
	totals := map[primitive.ObjectID]*models.CategorySummary{}
	order := []primitive.ObjectID{}

	for _, tx := range f.transactions {
		if tx.UserID != userID || tx.IsDeleted {
			continue
		}
		row, ok := totals[tx.CategoryID]
		if !ok {
			row = &models.CategorySummary{CategoryID: tx.CategoryID, Type: tx.Type}
			if category, found := f.categories.categories[tx.CategoryID]; found && !category.IsDeleted {
				row.CategoryName = category.Name
			}
			totals[tx.CategoryID] = row
			order = append(order, tx.CategoryID)
		}
		row.TotalAmount += tx.Amount
	}

	rows := make([]models.CategorySummary, 0, len(order))
	for _, id := range order {
		rows = append(rows, *totals[id])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalAmount > rows[j].TotalAmount })
	return rows, nil
}

// MonthlySummary mirrors the grouped pipeline shape, keyed in _id.
func (f *fakeTransactionStore) MonthlySummary(_ context.Context, userID primitive.ObjectID) ([]models.MonthlyGroupRow, error) {
	type key struct {
		year  int
		month int
		typ   models.EntryType
	}
	totals := map[key]float64{}
	for _, tx := range f.transactions {
		if tx.UserID != userID || tx.IsDeleted {
			continue
		}
		k := key{tx.CreatedAt.UTC().Year(), int(tx.CreatedAt.UTC().Month()), tx.Type}
		totals[k] += tx.Amount
	}

	rows := make([]models.MonthlyGroupRow, 0, len(totals))
	for k, total := range totals {
		rows = append(rows, models.MonthlyGroupRow{
			Key:         &models.MonthlyGroupKey{Year: k.year, Month: k.month, Type: k.typ},
			TotalAmount: total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Key.Year != rows[j].Key.Year {
			return rows[i].Key.Year < rows[j].Key.Year
		}
		return rows[i].Key.Month < rows[j].Key.Month
	})
	return rows, nil
}

func (f *fakeTransactionStore) SumAmountByType(_ context.Context, userID primitive.ObjectID, entryType models.EntryType, start, end time.Time) (float64, error) {
	var total float64
	for _, tx := range f.transactions {
		if tx.UserID != userID || tx.IsDeleted || tx.Type != entryType {
			continue
		}
		if tx.CreatedAt.Before(start) || !tx.CreatedAt.Before(end) {
			continue
		}
		total += tx.Amount
	}
	return total, nil
}

type fakeBudgetStore struct {
	budgets   map[string]*models.Budget
	lastLimit int64
}

func newFakeBudgetStore() *fakeBudgetStore {
	return &fakeBudgetStore{budgets: map[string]*models.Budget{}}
}

func budgetKey(userID primitive.ObjectID, month string) string {
	return userID.Hex() + "/" + month
}

func (f *fakeBudgetStore) Upsert(_ context.Context, userID primitive.ObjectID, month string, amount float64) (*models.Budget, error) {
	key := budgetKey(userID, month)
	budget, ok := f.budgets[key]
	if !ok {
		budget = &models.Budget{
			ID:     primitive.NewObjectID(),
			UserID: userID,
			Month:  month,
		}
		f.budgets[key] = budget
	}
	budget.Amount = amount
	budget.IsDeleted = false
	return budget, nil
}

func (f *fakeBudgetStore) GetByMonth(_ context.Context, userID primitive.ObjectID, month string) (*models.Budget, error) {
	budget, ok := f.budgets[budgetKey(userID, month)]
	if !ok || budget.IsDeleted {
		return nil, nil
	}
	return budget, nil
}

func (f *fakeBudgetStore) List(_ context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.Budget, int64, error) {
	f.lastLimit = limit

	matching := []models.Budget{}
	for _, budget := range f.budgets {
		if budget.UserID == userID && !budget.IsDeleted {
			matching = append(matching, *budget)
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].Month > matching[j].Month })

	total := int64(len(matching))
	if skip >= total {
		return []models.Budget{}, total, nil
	}
	matching = matching[skip:]
	if int64(len(matching)) > limit {
		matching = matching[:limit]
	}
	return matching, total, nil
}
