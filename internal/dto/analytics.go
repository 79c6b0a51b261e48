package dto

type CategorySummaryRow struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Type         string  `json:"type"`
	TotalAmount  float64 `json:"totalAmount"`
}

type MonthSummaryRow struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Type        string  `json:"type"`
	TotalAmount float64 `json:"totalAmount"`
	MonthKey    string  `json:"monthKey"`
}

type AnalyticsResponse struct {
	CategorySummary []CategorySummaryRow `json:"categorySummary"`
	MonthlySummary  []MonthSummaryRow    `json:"monthlySummary"`
}
