package stats

import (
	"fmt"
	"math"
	"time"

	"kitawise-server/src/models"
)

// GoalInsights renders per-goal metrics with a savings recommendation where
// one applies. Goals without a usable deadline still get progress figures,
// just no weekly target.
func GoalInsights(goals []models.Goal, now time.Time) []models.GoalInsight {
	insights := make([]models.GoalInsight, 0, len(goals))
	for _, g := range goals {
		target := float64(g.TargetAmount)
		current := float64(g.CurrentAmount)

		insight := models.GoalInsight{
			GoalID:    g.ID,
			Title:     g.Title,
			Progress:  GoalProgress(current, target),
			Remaining: target - current,
		}

		days, ok := DaysRemaining(g.Deadline, now)
		if ok {
			insight.DaysRemaining = days
			if weekly := WeeklySavings(insight.Remaining, days); weekly > 0 {
				insight.WeeklySavings = weekly
				insight.Message = fmt.Sprintf(
					"You're %.0f%% toward %q. Save ₱%s weekly to reach ₱%s by %s.",
					insight.Progress, g.Title, formatAmount(weekly), formatAmount(target), g.Deadline,
				)
			}
		}

		insights = append(insights, insight)
	}
	return insights
}

// Tips substitutes the headline figures into the dashboard's fixed advice
// templates. There is no model behind these; they are render-time formatting.
func Tips(summary models.DashboardSummary, goals []models.Goal) []string {
	tips := []string{
		"Opportunity: Consider taking on similar projects to boost income this quarter.",
		"Budget Alert: Review subscriptions and consider bundling tools to cut recurring costs.",
	}

	var target, current float64
	for _, g := range goals {
		target += float64(g.TargetAmount)
		current += float64(g.CurrentAmount)
	}
	if target > 0 {
		tips = append(tips, fmt.Sprintf(
			"Goal Tracking: You're %d%% toward your ₱%s savings goal. ₱%s to go.",
			summary.GoalProgress, formatAmount(target), formatAmount(target-current),
		))
	}
	return tips
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
