package handlers

import (
	"net/http"
	"time"

	"kitawise-server/src/logging"
	"kitawise-server/src/models"
	"kitawise-server/src/records"
	"kitawise-server/src/stats"
)

// GetDashboard computes the full derived-metrics payload from fresh
// collection snapshots: stat cards, the 12-month bar chart, and the expense
// breakdown pie.
func GetDashboard(projects *records.ProjectService, expenses *records.ExpenseService, goals *records.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := projects.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Dashboard: failed to load projects: %v", err)
			writeError(w, "dashboard", err)
			return
		}
		es, err := expenses.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Dashboard: failed to load expenses: %v", err)
			writeError(w, "dashboard", err)
			return
		}
		gs, err := goals.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Dashboard: failed to load goals: %v", err)
			writeError(w, "dashboard", err)
			return
		}

		summary := stats.Summarize(ps, es, gs)
		resp := struct {
			Summary    models.DashboardSummary `json:"summary"`
			Monthly    []models.MonthlyPoint   `json:"monthly"`
			Categories []models.CategorySlice  `json:"categories"`
		}{
			Summary:    summary,
			Monthly:    stats.MonthlySeries(ps, es, time.Now()),
			Categories: stats.CategoryBreakdown(es),
		}
		if resp.Categories == nil {
			resp.Categories = []models.CategorySlice{}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// GetInsights returns the per-goal recommendation figures plus the dashboard
// tip strings.
func GetInsights(projects *records.ProjectService, expenses *records.ExpenseService, goals *records.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := projects.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Insights: failed to load projects: %v", err)
			writeError(w, "insights", err)
			return
		}
		es, err := expenses.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Insights: failed to load expenses: %v", err)
			writeError(w, "insights", err)
			return
		}
		gs, err := goals.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Insights: failed to load goals: %v", err)
			writeError(w, "insights", err)
			return
		}

		summary := stats.Summarize(ps, es, gs)
		resp := struct {
			Goals []models.GoalInsight `json:"goals"`
			Tips  []string             `json:"tips"`
		}{
			Goals: stats.GoalInsights(gs, time.Now()),
			Tips:  stats.Tips(summary, gs),
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
