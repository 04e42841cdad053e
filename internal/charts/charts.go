// Package charts builds the data series behind the dashboard charts.
// Rendering belongs to the boundary; this package only aggregates.
package charts

import (
	"time"

	"uniwallet/internal/core"
)

// Type selects which chart the dashboard shows.
type Type string

const (
	TypeCategory Type = "category"
	TypeDaily    Type = "daily"
)

// Series is a ready-to-render dataset. Kind hints the chart shape
// ("doughnut" for category shares, "line" for the daily trend).
type Series struct {
	Kind   string    `json:"kind"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}

// Service keeps the selected chart type and builds the active series.
type Service struct {
	chartType Type
}

func NewService() *Service {
	return &Service{chartType: TypeCategory}
}

// SetType switches the active chart. Unknown values keep the current type.
func (s *Service) SetType(t Type) {
	if t == TypeCategory || t == TypeDaily {
		s.chartType = t
	}
}

// Type returns the active chart type.
func (s *Service) Type() Type { return s.chartType }

// Build returns the series for the active chart type.
func (s *Service) Build(expenses []core.Expense, now time.Time) Series {
	if s.chartType == TypeDaily {
		return DailySeries(expenses, now)
	}
	return CategorySeries(expenses)
}

// CategorySeries sums spending per category, in canonical category order,
// skipping categories with no expenses.
func CategorySeries(expenses []core.Expense) Series {
	sums := make(map[core.Category]float64)
	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	series := Series{Kind: "doughnut"}
	for _, c := range core.Categories() {
		total, ok := sums[c]
		if !ok {
			continue
		}
		info := c.Info()
		series.Labels = append(series.Labels, info.Name)
		series.Values = append(series.Values, total)
		series.Colors = append(series.Colors, info.Color)
	}
	return series
}

// DailySeries sums spending per calendar day over the last 7 days, today
// included, zero-filled for days without expenses. Labels are short
// weekday names.
func DailySeries(expenses []core.Expense, now time.Time) Series {
	series := Series{
		Kind:   "line",
		Labels: make([]string, 0, 7),
		Values: make([]float64, 0, 7),
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	totals := make(map[string]float64, 7)
	days := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		days = append(days, key)
		totals[key] = 0
		series.Labels = append(series.Labels, day.Format("Mon"))
	}

	for _, e := range expenses {
		key := e.Date.UTC().Format("2006-01-02")
		if _, ok := totals[key]; ok {
			totals[key] += e.Amount
		}
	}

	for _, key := range days {
		series.Values = append(series.Values, totals[key])
	}
	return series
}
