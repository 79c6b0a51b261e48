package service

import (
	"testing"

	"github.com/SahO-ux/budget-tracker/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeMonthRowGroupedShape(t *testing.T) {
	row := models.MonthlyGroupRow{
		Key:         &models.MonthlyGroupKey{Year: 2025, Month: 3, Type: models.TypeExpense},
		TotalAmount: 412.5,
	}

	got := normalizeMonthRow(row)

	if got.Year != 2025 || got.Month != 3 {
		t.Errorf("year/month = %d/%d, want 2025/3", got.Year, got.Month)
	}
	if got.Type != models.TypeExpense {
		t.Errorf("type = %q, want expense", got.Type)
	}
	if got.TotalAmount != 412.5 {
		t.Errorf("totalAmount = %v, want 412.5", got.TotalAmount)
	}
	if got.MonthKey != "2025-03" {
		t.Errorf("monthKey = %q, want 2025-03", got.MonthKey)
	}
}

func TestNormalizeMonthRowFlattenedShape(t *testing.T) {
	row := models.MonthlyGroupRow{
		Year:        2024,
		Month:       11,
		Type:        models.TypeIncome,
		TotalAmount: 5000,
	}

	got := normalizeMonthRow(row)

	want := models.MonthSummary{
		Year:        2024,
		Month:       11,
		Type:        models.TypeIncome,
		TotalAmount: 5000,
		MonthKey:    "2024-11",
	}
	if got != want {
		t.Errorf("normalizeMonthRow = %+v, want %+v", got, want)
	}
}

// Both shapes describing the same bucket must normalize identically.
func TestNormalizeMonthRowShapesAgree(t *testing.T) {
	grouped := models.MonthlyGroupRow{
		Key:         &models.MonthlyGroupKey{Year: 2025, Month: 7, Type: models.TypeExpense},
		TotalAmount: 99,
	}
	flattened := models.MonthlyGroupRow{
		Year:        2025,
		Month:       7,
		Type:        models.TypeExpense,
		TotalAmount: 99,
	}

	if normalizeMonthRow(grouped) != normalizeMonthRow(flattened) {
		t.Error("grouped and flattened shapes should normalize to the same record")
	}
}

func TestCategorySummaryUncategorizedFallback(t *testing.T) {
	id := primitive.NewObjectID()
	rows := []models.CategorySummary{
		{CategoryID: id, CategoryName: "", Type: models.TypeExpense, TotalAmount: 75},
		{CategoryID: primitive.NewObjectID(), CategoryName: "Food", Type: models.TypeExpense, TotalAmount: 30},
	}

	got := toCategorySummaryRows(rows)

	if got[0].CategoryName != UncategorizedName {
		t.Errorf("missing category name should become %q, got %q", UncategorizedName, got[0].CategoryName)
	}
	if got[0].CategoryID != id.Hex() {
		t.Errorf("categoryId = %q, want %q", got[0].CategoryID, id.Hex())
	}
	if got[1].CategoryName != "Food" {
		t.Errorf("existing name must pass through, got %q", got[1].CategoryName)
	}
}

func TestSummaryRowsEmptyInputs(t *testing.T) {
	if got := toCategorySummaryRows(nil); got == nil || len(got) != 0 {
		t.Errorf("toCategorySummaryRows(nil) = %v, want empty non-nil slice", got)
	}
	if got := toMonthSummaryRows(nil); got == nil || len(got) != 0 {
		t.Errorf("toMonthSummaryRows(nil) = %v, want empty non-nil slice", got)
	}
}
