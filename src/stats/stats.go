// Package stats computes the dashboard's derived metrics from full collection
// snapshots. Everything here is pure: callers pass the records and a clock
// value, nothing touches the store.
package stats

import (
	"math"
	"time"

	"kitawise-server/src/models"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Summarize produces the headline dashboard figures.
func Summarize(projects []models.Project, expenses []models.Expense, goals []models.Goal) models.DashboardSummary {
	var totalIncome float64
	for _, p := range projects {
		totalIncome += float64(p.ActualIncome)
	}

	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += float64(e.Amount)
	}

	netProfit := totalIncome - totalExpenses

	// Margin is clamped to 0 on zero income so an expenses-only ledger never
	// reports NaN or Infinity.
	var profitMargin float64
	if totalIncome != 0 {
		profitMargin = netProfit / totalIncome * 100
	}

	var goalTarget, goalCurrent float64
	for _, g := range goals {
		goalTarget += float64(g.TargetAmount)
		goalCurrent += float64(g.CurrentAmount)
	}

	goalProgress := 0
	if goalTarget != 0 {
		goalProgress = int(math.Round(goalCurrent / goalTarget * 100))
	}

	return models.DashboardSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		ProfitMargin:  profitMargin,
		GoalProgress:  goalProgress,
		// Intentionally unclamped: an over-funded plan shows a negative
		// remaining amount.
		GoalRemaining: goalTarget - goalCurrent,
	}
}

// MonthlySeries buckets expenses and project income into the 12 calendar
// months of now's year. Records dated in other years are excluded, not
// wrapped. A project without a date falls back to its creation time.
func MonthlySeries(projects []models.Project, expenses []models.Expense, now time.Time) []models.MonthlyPoint {
	year := now.Year()
	series := make([]models.MonthlyPoint, 12)
	for i := range series {
		series[i].Month = monthLabels[i]
	}

	for _, e := range expenses {
		d, ok := ParseDate(e.Date)
		if !ok || d.Year() != year {
			continue
		}
		series[int(d.Month())-1].Expenses += float64(e.Amount)
	}

	for _, p := range projects {
		d, ok := ParseDate(p.Date)
		if !ok {
			if p.CreatedAt.IsZero() {
				continue
			}
			d = p.CreatedAt
		}
		if d.Year() != year {
			continue
		}
		series[int(d.Month())-1].Income += float64(p.ActualIncome)
	}

	return series
}

// CategoryBreakdown groups expenses by category with display colors attached.
// Order follows first appearance in the input; callers should not rely on it.
func CategoryBreakdown(expenses []models.Expense) []models.CategorySlice {
	totals := make(map[string]float64)
	var order []string
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += float64(e.Amount)
	}

	slices := make([]models.CategorySlice, 0, len(order))
	for _, cat := range order {
		slices = append(slices, models.CategorySlice{
			Category: cat,
			Total:    totals[cat],
			Color:    models.CategoryColor(cat),
		})
	}
	return slices
}

// GoalProgress returns the funded percentage of a single goal, clamped at 100
// even when over-funded. A goal with no target reads as 0.
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(current/target*100, 100)
}

// DaysRemaining counts whole days from the calendar day of now until the
// deadline. Negative means overdue. ok is false when the deadline is missing
// or unparseable.
func DaysRemaining(deadline string, now time.Time) (int, bool) {
	d, ok := ParseDate(deadline)
	if !ok {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := d.Sub(today).Hours() / 24
	return int(math.Ceil(diff)), true
}

// WeeklySavings is the suggested amount to put aside each week to close the
// remaining gap by the deadline. Only meaningful when something is left to
// save and the deadline has not passed; otherwise it returns 0.
func WeeklySavings(remaining float64, daysRemaining int) float64 {
	if remaining <= 0 || daysRemaining <= 0 {
		return 0
	}
	return math.Ceil(remaining / float64(daysRemaining) * 7)
}

// ParseDate accepts the two date shapes clients send: plain ISO dates and full
// RFC 3339 timestamps.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
