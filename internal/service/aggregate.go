package service

import (
	"github.com/SahO-ux/budget-tracker/internal/dto"
	"github.com/SahO-ux/budget-tracker/internal/models"
)

// UncategorizedName is substituted when a summary row's category was
// deleted or never existed. The fallback is applied here, after the
// left-outer join, so the data layer never invents names.
const UncategorizedName = "Uncategorized"

// normalizeMonthRow folds either monthly-row shape (grouped _id
// sub-document or legacy flattened fields) into the canonical summary
// record, deriving the zero-padded monthKey.
func normalizeMonthRow(row models.MonthlyGroupRow) models.MonthSummary {
	year, month, entryType := row.Year, row.Month, row.Type
	if row.Key != nil {
		year, month, entryType = row.Key.Year, row.Key.Month, row.Key.Type
	}

	return models.MonthSummary{
		Year:        year,
		Month:       month,
		Type:        entryType,
		TotalAmount: row.TotalAmount,
		MonthKey:    monthKey(year, month),
	}
}

func toCategorySummaryRows(rows []models.CategorySummary) []dto.CategorySummaryRow {
	out := make([]dto.CategorySummaryRow, 0, len(rows))
	for _, row := range rows {
		name := row.CategoryName
		if name == "" {
			name = UncategorizedName
		}
		out = append(out, dto.CategorySummaryRow{
			CategoryID:   row.CategoryID.Hex(),
			CategoryName: name,
			Type:         string(row.Type),
			TotalAmount:  row.TotalAmount,
		})
	}
	return out
}

func toMonthSummaryRows(rows []models.MonthlyGroupRow) []dto.MonthSummaryRow {
	out := make([]dto.MonthSummaryRow, 0, len(rows))
	for _, row := range rows {
		summary := normalizeMonthRow(row)
		out = append(out, dto.MonthSummaryRow{
			Year:        summary.Year,
			Month:       summary.Month,
			Type:        string(summary.Type),
			TotalAmount: summary.TotalAmount,
			MonthKey:    summary.MonthKey,
		})
	}
	return out
}
