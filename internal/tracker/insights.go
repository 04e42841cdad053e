package tracker

import (
	"fmt"

	"uniwallet/internal/core"
)

// Insight is a short spending observation for the dashboard.
type Insight struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

const (
	insightRed    = "#ef4444"
	insightAmber  = "#f59e0b"
	insightGreen  = "#10b981"
	insightBlue   = "#3b82f6"
	insightPurple = "#8b5cf6"
)

// Insights derives spending observations from the current ledger: budget
// usage status, the top spending category and the average expense. Returns
// nil when there are no expenses yet.
func (t *Tracker) Insights() []Insight {
	if len(t.expenses) == 0 {
		return nil
	}

	totals := t.Totals()
	insights := make([]Insight, 0, 3)
	insights = append(insights, t.budgetInsight(totals))

	if top, share, ok := t.topCategory(totals.TotalExpenses); ok {
		insights = append(insights, Insight{
			Title: "📊 Top Spending Category",
			Message: fmt.Sprintf("%s accounts for %.1f%% of your spending (£%.2f).",
				top.Category.Info().Name, share, top.Amount),
			Color: insightBlue,
		})
	}

	avg := totals.TotalExpenses / float64(len(t.expenses))
	insights = append(insights, Insight{
		Title: "💰 Average Expense",
		Message: fmt.Sprintf("Your average expense is £%.2f. You've made %d transactions.",
			avg, len(t.expenses)),
		Color: insightPurple,
	})

	return insights
}

func (t *Tracker) budgetInsight(totals core.Totals) Insight {
	if t.budget <= 0 {
		return Insight{
			Title:   "🚨 Budget Alert",
			Message: fmt.Sprintf("You've spent £%.2f with no budget set. Set one to track your usage.", totals.TotalExpenses),
			Color:   insightRed,
		}
	}

	usage := totals.TotalExpenses / t.budget * 100
	switch {
	case usage > 90:
		return Insight{
			Title:   "🚨 Budget Alert",
			Message: fmt.Sprintf("You've used %.1f%% of your budget. Consider reducing spending.", usage),
			Color:   insightRed,
		}
	case usage > 75:
		return Insight{
			Title:   "⚠️ Budget Warning",
			Message: fmt.Sprintf("You've used %.1f%% of your budget. Monitor your spending closely.", usage),
			Color:   insightAmber,
		}
	default:
		return Insight{
			Title:   "✅ Budget Status",
			Message: fmt.Sprintf("You're doing well! %.1f%% of budget used.", usage),
			Color:   insightGreen,
		}
	}
}

type categoryTotal struct {
	Category core.Category
	Amount   float64
}

// topCategory finds the category with the highest spend. Ties keep the
// canonical category order.
func (t *Tracker) topCategory(total float64) (categoryTotal, float64, bool) {
	if total <= 0 {
		return categoryTotal{}, 0, false
	}

	sums := make(map[core.Category]float64)
	for _, e := range t.expenses {
		sums[e.Category] += e.Amount
	}

	var top categoryTotal
	found := false
	for _, c := range core.Categories() {
		amount, ok := sums[c]
		if !ok {
			continue
		}
		if !found || amount > top.Amount {
			top = categoryTotal{Category: c, Amount: amount}
			found = true
		}
	}
	if !found {
		return categoryTotal{}, 0, false
	}
	return top, top.Amount / total * 100, true
}
