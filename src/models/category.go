package models

// Expense categories shown in the client's pickers. These are not enforced on
// write: an unknown category is stored as-is and falls back to
// FallbackCategoryColor in the breakdown chart.
var ExpenseCategories = []string{
	"Software Tools",
	"Equipment",
	"Transport",
	"Marketing",
	"Office",
	"Utilities",
	"Other",
}

var GoalCategories = []string{
	"Savings",
	"Equipment",
	"Income",
	"Personal",
	"Business",
	"Investment",
}

// categoryColors is the single source of truth for chart colors, shared by the
// breakdown endpoint and any future export surface.
var categoryColors = map[string]string{
	"Software Tools": "#4CAF50",
	"Equipment":      "#2196F3",
	"Transport":      "#FF9800",
	"Marketing":      "#9C27B0",
	"Office":         "#795548",
	"Utilities":      "#E91E63",
	"Other":          "#607D8B",
}

const FallbackCategoryColor = "#9E9E9E"

func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return FallbackCategoryColor
}
