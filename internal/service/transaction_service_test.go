package service

import (
	"context"
	"testing"
	"time"

	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTransactionFixture() (*TransactionService, *fakeTransactionStore, *fakeCategoryStore, primitive.ObjectID) {
	categories := newFakeCategoryStore()
	transactions := newFakeTransactionStore(categories)
	svc := NewTransactionService(transactions, categories, zap.NewNop())
	return svc, transactions, categories, primitive.NewObjectID()
}

func TestCreateTransaction(t *testing.T) {
	svc, _, categories, userID := newTransactionFixture()
	food := categories.add(userID, "Food", models.TypeExpense)

	got, err := svc.Create(context.Background(), userID, &dto.CreateTransactionRequest{
		Amount:   42.50,
		Type:     "expense",
		Category: food.ID.Hex(),
		Note:     "  lunch  ",
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.Amount != 42.50 || got.Type != "expense" {
		t.Errorf("created = %+v, want 42.50/expense", got)
	}
	if got.Category.Name != "Food" {
		t.Errorf("category name = %q, want Food (joined in)", got.Category.Name)
	}
	if got.Note != "lunch" {
		t.Errorf("note = %q, want trimmed %q", got.Note, "lunch")
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	svc, _, categories, userID := newTransactionFixture()
	food := categories.add(userID, "Food", models.TypeExpense)
	otherUserCat := categories.add(primitive.NewObjectID(), "Rent", models.TypeExpense)

	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"zero amount", dto.CreateTransactionRequest{Amount: 0, Type: "expense", Category: food.ID.Hex()}},
		{"negative amount", dto.CreateTransactionRequest{Amount: -5, Type: "expense", Category: food.ID.Hex()}},
		{"bad type", dto.CreateTransactionRequest{Amount: 10, Type: "transfer", Category: food.ID.Hex()}},
		{"bad category id", dto.CreateTransactionRequest{Amount: 10, Type: "expense", Category: "nope"}},
		{"missing category", dto.CreateTransactionRequest{Amount: 10, Type: "expense", Category: primitive.NewObjectID().Hex()}},
		{"other user's category", dto.CreateTransactionRequest{Amount: 10, Type: "expense", Category: otherUserCat.ID.Hex()}},
		{"type mismatches category", dto.CreateTransactionRequest{Amount: 10, Type: "income", Category: food.ID.Hex()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), userID, &tt.req); !IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestListTransactionsValidation(t *testing.T) {
	svc, _, _, userID := newTransactionFixture()
	ctx := context.Background()

	minA, maxA := 100.0, 10.0
	if _, err := svc.List(ctx, userID, &TransactionListParams{MinAmount: &minA, MaxAmount: &maxA}); !IsValidationError(err) {
		t.Errorf("min>max should be a validation error, got %v", err)
	}

	if _, err := svc.List(ctx, userID, &TransactionListParams{SortBy: "note"}); !IsValidationError(err) {
		t.Errorf("unknown sort key should be a validation error, got %v", err)
	}

	if _, err := svc.List(ctx, userID, &TransactionListParams{Skip: -2}); !IsValidationError(err) {
		t.Errorf("negative skip should be a validation error, got %v", err)
	}

	if _, err := svc.List(ctx, primitive.NilObjectID, &TransactionListParams{}); !IsValidationError(err) {
		t.Errorf("missing user id should be a validation error, got %v", err)
	}
}

func TestListTransactionsFiltersAndPages(t *testing.T) {
	svc, transactions, categories, userID := newTransactionFixture()
	ctx := context.Background()

	food := categories.add(userID, "Food", models.TypeExpense)
	salary := categories.add(userID, "Salary", models.TypeIncome)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		transactions.add(userID, float64(10+i), models.TypeExpense, food.ID, base.AddDate(0, 0, i))
	}
	transactions.add(userID, 5000, models.TypeIncome, salary.ID, base)

	// Limit above the cap falls back to the default page size.
	got, err := svc.List(ctx, userID, &TransactionListParams{Limit: 100})
	if err != nil {
		t.Fatal(err)
	}
	if got.Count != int(defaultTransactionLimit) {
		t.Errorf("count = %d, want %d", got.Count, defaultTransactionLimit)
	}
	if got.Total != 26 {
		t.Errorf("total = %d, want 26", got.Total)
	}

	// Type filter.
	got, err = svc.List(ctx, userID, &TransactionListParams{Type: "income"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 1 || got.Results[0].Amount != 5000 {
		t.Errorf("income filter: total=%d results=%+v", got.Total, got.Results)
	}

	// Amount range.
	minA, maxA := 12.0, 14.0
	got, err = svc.List(ctx, userID, &TransactionListParams{MinAmount: &minA, MaxAmount: &maxA})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 3 {
		t.Errorf("amount range: total = %d, want 3", got.Total)
	}

	// Date range, end date inclusive.
	got, err = svc.List(ctx, userID, &TransactionListParams{StartDate: "2025-06-01", EndDate: "2025-06-03"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 4 { // three expenses + the income row on day one
		t.Errorf("date range: total = %d, want 4", got.Total)
	}

	// Ascending amount sort.
	got, err = svc.List(ctx, userID, &TransactionListParams{SortBy: "amount", SortDir: "asc", Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if got.Results[0].Amount != 10 {
		t.Errorf("asc amount sort: first = %v, want 10", got.Results[0].Amount)
	}
}

func TestUpdateTransactionRevalidatesCategoryPairing(t *testing.T) {
	svc, transactions, categories, userID := newTransactionFixture()
	ctx := context.Background()

	food := categories.add(userID, "Food", models.TypeExpense)
	salary := categories.add(userID, "Salary", models.TypeIncome)
	tx := transactions.add(userID, 100, models.TypeExpense, food.ID, time.Now().UTC())

	// Changing only the category to one of a different type must fail.
	salaryHex := salary.ID.Hex()
	if _, err := svc.Update(ctx, userID, tx.ID, &dto.UpdateTransactionRequest{Category: &salaryHex}); !IsValidationError(err) {
		t.Errorf("category/type mismatch should be a validation error, got %v", err)
	}

	// Changing type and category together to a consistent pair is fine.
	income := "income"
	got, err := svc.Update(ctx, userID, tx.ID, &dto.UpdateTransactionRequest{Type: &income, Category: &salaryHex})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != "income" || got.Category.Name != "Salary" {
		t.Errorf("updated = %+v, want income/Salary", got)
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc, _, _, userID := newTransactionFixture()

	amount := 50.0
	got, err := svc.Update(context.Background(), userID, primitive.NewObjectID(), &dto.UpdateTransactionRequest{Amount: &amount})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("missing transaction should yield nil, got %+v", got)
	}
}

func TestDeleteTransactionRemovesFromAggregation(t *testing.T) {
	categories := newFakeCategoryStore()
	transactions := newFakeTransactionStore(categories)
	txSvc := NewTransactionService(transactions, categories, zap.NewNop())
	analytics := NewAnalyticsService(transactions, zap.NewNop())

	userID := primitive.NewObjectID()
	food := categories.add(userID, "Food", models.TypeExpense)
	keep := transactions.add(userID, 70, models.TypeExpense, food.ID, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	drop := transactions.add(userID, 30, models.TypeExpense, food.ID, time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()

	before, err := analytics.GetAnalytics(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if before.CategorySummary[0].TotalAmount != 100 {
		t.Fatalf("pre-delete total = %v, want 100", before.CategorySummary[0].TotalAmount)
	}

	deleted, err := txSvc.Delete(ctx, userID, drop.ID)
	if err != nil || !deleted {
		t.Fatalf("delete failed: deleted=%v err=%v", deleted, err)
	}

	after, err := analytics.GetAnalytics(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if after.CategorySummary[0].TotalAmount != keep.Amount {
		t.Errorf("post-delete total = %v, want %v", after.CategorySummary[0].TotalAmount, keep.Amount)
	}

	// The response computed before the delete is untouched.
	if before.CategorySummary[0].TotalAmount != 100 {
		t.Error("earlier result must not mutate retroactively")
	}
}
