package metrics

import (
	"math"
	"time"

	"centsible/internal/models"
)

// FundCoverage reports how far along an emergency fund is. Configured is
// false when the user has no fund record; consumers render a "not set up"
// state rather than zeros in that case.
type FundCoverage struct {
	Configured         bool    `json:"configured"`
	ProgressPercentage int     `json:"progress_percentage"`
	MonthsCovered      float64 `json:"months_covered"`
	RemainingToGoal    int64   `json:"remaining_to_goal"`
}

// CoverageForFund derives progress toward the fund goal and how many months
// of expenses the current balance covers, to one decimal place. Progress is
// capped at 100 even when the fund is overfunded.
func CoverageForFund(fund *models.EmergencyFund, avgMonthlyExpenses int64) FundCoverage {
	if fund == nil {
		return FundCoverage{}
	}

	c := FundCoverage{Configured: true}
	if fund.GoalAmount > 0 {
		pct := int(math.Round(float64(fund.CurrentAmount) / float64(fund.GoalAmount) * 100))
		if pct > 100 {
			pct = 100
		}
		c.ProgressPercentage = pct
	}
	if avgMonthlyExpenses > 0 {
		months := float64(fund.CurrentAmount) / float64(avgMonthlyExpenses)
		c.MonthsCovered = math.Round(months*10) / 10
	}
	if remaining := fund.GoalAmount - fund.CurrentAmount; remaining > 0 {
		c.RemainingToGoal = remaining
	}
	return c
}

// AverageMonthlyExpenses returns the mean expense total over the trailing
// `months` calendar months including the current one. Empty months pull the
// average down; that is intentional, matching how coverage is presented.
func AverageMonthlyExpenses(transactions []models.Transaction, now time.Time, months int) int64 {
	if months <= 0 {
		return 0
	}
	var total int64
	for _, p := range TrendSeries(transactions, now, months) {
		total += p.Expenses
	}
	return total / int64(months)
}
