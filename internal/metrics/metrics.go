// Package metrics computes the derived figures shown on the dashboards:
// net worth, monthly income/expense aggregates, trend series, expense
// breakdowns, budget progress, debt payoff projections, and emergency-fund
// coverage.
//
// Every function is pure: it consumes an already-fetched, read-only snapshot
// of domain records plus an explicit reference time, performs no I/O, and
// never returns an error. Divisions guard their denominators and substitute
// zero; degenerate payoff inputs yield the Unpayable sentinel instead of a
// non-terminating loop.
package metrics

import (
	"math"
	"sort"
	"time"

	"centsible/internal/models"
)

// UncategorizedLabel groups expense transactions that carry no category.
const UncategorizedLabel = "uncategorized"

// NetWorthSummary decomposes a user's net worth into assets and liabilities.
type NetWorthSummary struct {
	TotalAssets        int64 `json:"total_assets"`
	AccountLiabilities int64 `json:"account_liabilities"`
	TotalDebt          int64 `json:"total_debt"`
	TotalLiabilities   int64 `json:"total_liabilities"`
	NetWorth           int64 `json:"net_worth"`
}

// NetWorth partitions accounts by the sign of their value and combines the
// liability side with outstanding debt balances. Zero-value accounts
// contribute to neither sum.
func NetWorth(accounts []models.Account, debts []models.Debt) NetWorthSummary {
	var s NetWorthSummary
	for i := range accounts {
		v := accounts[i].Value
		switch {
		case v > 0:
			s.TotalAssets += v
		case v < 0:
			s.AccountLiabilities += -v
		}
	}
	for i := range debts {
		s.TotalDebt += debts[i].Balance
	}
	s.TotalLiabilities = s.AccountLiabilities + s.TotalDebt
	s.NetWorth = s.TotalAssets - s.TotalLiabilities
	return s
}

// MonthSummary aggregates income and expenses for one calendar month.
type MonthSummary struct {
	Income      int64   `json:"income"`
	Expenses    int64   `json:"expenses"`
	Savings     int64   `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// SummarizeMonth filters transactions to the given calendar month and sums
// absolute amounts by type. The savings rate is clamped at zero: a month
// that spends more than it earns reports 0, not a negative rate.
func SummarizeMonth(transactions []models.Transaction, year int, month time.Month) MonthSummary {
	var s MonthSummary
	for i := range transactions {
		t := &transactions[i]
		if !inMonth(t.Date, year, month) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			s.Income += absCents(t.Amount)
		case models.TransactionTypeExpense:
			s.Expenses += absCents(t.Amount)
		}
	}
	s.Savings = s.Income - s.Expenses
	if s.Income > 0 {
		s.SavingsRate = math.Max(0, float64(s.Income-s.Expenses)/float64(s.Income)*100)
	}
	return s
}

// TrendPoint is one month's bucket in a trailing trend series.
type TrendPoint struct {
	Label    string     `json:"label"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Income   int64      `json:"income"`
	Expenses int64      `json:"expenses"`
	Savings  int64      `json:"savings"`
}

// TrendSeries buckets transactions into the trailing `months` calendar
// months counting backward from now's month (inclusive). Months without
// transactions report all-zero buckets. The result is ordered oldest first.
func TrendSeries(transactions []models.Transaction, now time.Time, months int) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}

	points := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		ref := now.AddDate(0, -i, -(now.Day() - 1)) // first of the target month
		sum := SummarizeMonth(transactions, ref.Year(), ref.Month())
		points = append(points, TrendPoint{
			Label:    ref.Month().String()[:3],
			Year:     ref.Year(),
			Month:    ref.Month(),
			Income:   sum.Income,
			Expenses: sum.Expenses,
			Savings:  sum.Savings,
		})
	}
	return points
}

// CategoryAmount is one category's share of a month's expenses.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// ExpenseBreakdown groups the month's expense transactions by category and
// sums absolute amounts per group, largest first. Transactions without a
// category fall into the "uncategorized" bucket.
func ExpenseBreakdown(transactions []models.Transaction, year int, month time.Month) []CategoryAmount {
	totals := make(map[string]int64)
	for i := range transactions {
		t := &transactions[i]
		if t.Type != models.TransactionTypeExpense || !inMonth(t.Date, year, month) {
			continue
		}
		category := t.Category
		if category == "" {
			category = UncategorizedLabel
		}
		totals[category] += absCents(t.Amount)
	}

	breakdown := make([]CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// BudgetStatus reports one budget's consumption for a month.
type BudgetStatus struct {
	BudgetID   string `json:"budget_id"`
	Category   string `json:"category"`
	Budgeted   int64  `json:"budgeted"`
	Spent      int64  `json:"spent"`
	Remaining  int64  `json:"remaining"`
	Percentage int    `json:"percentage"`
}

// BudgetProgress matches each budget against the month's expense
// transactions by category equality (both sides are normalized at write
// time) and reports consumption sorted highest percentage first, so
// at-risk budgets surface at the top. Budgets sharing a category
// accumulate the same transactions independently.
func BudgetProgress(budgets []models.Budget, transactions []models.Transaction, year int, month time.Month) []BudgetStatus {
	spentByCategory := make(map[string]int64)
	for i := range transactions {
		t := &transactions[i]
		if t.Type != models.TransactionTypeExpense || !inMonth(t.Date, year, month) {
			continue
		}
		spentByCategory[t.Category] += absCents(t.Amount)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for i := range budgets {
		b := &budgets[i]
		spent := spentByCategory[b.Category]
		var pct int
		if b.Amount > 0 {
			pct = int(math.Round(float64(spent) / float64(b.Amount) * 100))
		}
		statuses = append(statuses, BudgetStatus{
			BudgetID:   b.ID,
			Category:   b.Category,
			Budgeted:   b.Amount,
			Spent:      spent,
			Remaining:  b.Amount - spent,
			Percentage: pct,
		})
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Percentage > statuses[j].Percentage
	})
	return statuses
}

// inMonth reports whether t falls within the given calendar month.
func inMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// absCents guards against amounts that slipped into storage pre-signed.
func absCents(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
