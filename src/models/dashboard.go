package models

// DashboardSummary holds the headline figures for the stat cards.
type DashboardSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
	GoalProgress  int     `json:"goalProgress"`
	GoalRemaining float64 `json:"goalRemaining"`
}

// MonthlyPoint is one bar of the income-vs-expenses chart.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CategorySlice is one slice of the expense breakdown pie.
type CategorySlice struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Color    string  `json:"color"`
}

// GoalInsight carries per-goal derived metrics plus the rendered
// recommendation text.
type GoalInsight struct {
	GoalID        string  `json:"goalId"`
	Title         string  `json:"title"`
	Progress      float64 `json:"progress"`
	Remaining     float64 `json:"remaining"`
	DaysRemaining int     `json:"daysRemaining"`
	WeeklySavings float64 `json:"weeklySavings,omitempty"`
	Message       string  `json:"message,omitempty"`
}
