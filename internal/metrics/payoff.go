package metrics

import (
	"math"
	"sort"
	"time"

	"centsible/internal/models"
)

// maxPayoffMonths caps the amortization simulation so pathological inputs
// (a payment barely above the monthly interest) still terminate. 100 years.
const maxPayoffMonths = 1200

// Debt-to-income classification bands, in percent.
const (
	dtiHealthyMax  = 36.0
	dtiModerateMax = 43.0
)

// DTI classification labels.
const (
	DTIHealthy  = "Healthy"
	DTIModerate = "Moderate"
	DTIHigh     = "High"
)

// DebtSummary aggregates all debts into the figures the dashboard shows.
type DebtSummary struct {
	TotalBalance      int64   `json:"total_balance"`
	MonthlyInterest   int64   `json:"monthly_interest"`
	MonthlyPayments   int64   `json:"monthly_payments"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`
	Classification    string  `json:"classification"`
	EstimatedMonths   int     `json:"estimated_months"`
}

// SummarizeDebts totals balances, minimum payments, and the simple monthly
// interest accrual across all debts (summed, not compounded), and
// classifies the payment load against monthly income.
func SummarizeDebts(debts []models.Debt, monthlyIncome int64) DebtSummary {
	var s DebtSummary
	for i := range debts {
		d := &debts[i]
		s.TotalBalance += d.Balance
		s.MonthlyPayments += d.MinPayment
		s.MonthlyInterest += monthlyInterest(d.Balance, d.InterestRate)
	}

	if monthlyIncome > 0 {
		s.DebtToIncomeRatio = float64(s.MonthlyPayments) / float64(monthlyIncome) * 100
	}
	switch {
	case s.DebtToIncomeRatio <= dtiHealthyMax:
		s.Classification = DTIHealthy
	case s.DebtToIncomeRatio <= dtiModerateMax:
		s.Classification = DTIModerate
	default:
		s.Classification = DTIHigh
	}

	// Aggregate estimate treats all debts as one pool at a balance-weighted
	// rate, paid with the combined minimum payments.
	s.EstimatedMonths = EstimatePayoffMonths(s.TotalBalance, weightedRate(debts), s.MonthlyPayments)
	return s
}

// PayoffProjection is the result of a month-by-month amortization.
type PayoffProjection struct {
	Months        int       `json:"months"`
	Unpayable     bool      `json:"unpayable"`
	PayoffDate    time.Time `json:"payoff_date,omitzero"`
	TotalInterest int64     `json:"total_interest"`
}

// PayoffSchedule simulates paying monthlyPayment against balance at the
// given annual rate. If the payment never exceeds the accruing interest the
// debt cannot be retired under this plan and the Unpayable sentinel is
// reported instead of looping forever. The final payment is capped at the
// remaining balance plus that month's interest.
func PayoffSchedule(balance int64, annualRatePct float64, monthlyPayment int64, now time.Time) PayoffProjection {
	if balance <= 0 {
		return PayoffProjection{PayoffDate: now}
	}
	if monthlyPayment <= 0 {
		return PayoffProjection{Unpayable: true}
	}

	monthlyRate := annualRatePct / 100 / 12
	remaining := float64(balance)
	payment := float64(monthlyPayment)
	var totalInterest float64
	months := 0

	for remaining > 0 {
		interest := remaining * monthlyRate
		if payment <= interest {
			return PayoffProjection{Unpayable: true}
		}
		if months >= maxPayoffMonths {
			return PayoffProjection{Unpayable: true}
		}

		principal := payment - interest
		if principal > remaining {
			principal = remaining
		}
		remaining -= principal
		totalInterest += interest
		months++
	}

	return PayoffProjection{
		Months:        months,
		PayoffDate:    now.AddDate(0, months, 0),
		TotalInterest: int64(math.Round(totalInterest)),
	}
}

// EstimatePayoffMonths is the closed-form annuity estimate
// n = -log(1 - r*B/P) / log(1 + r), used for the aggregate all-debts
// figure. When the logarithm is numerically invalid (payments barely above
// interest, zero rate) it falls back to simple linear division.
func EstimatePayoffMonths(balance int64, annualRatePct float64, monthlyPayment int64) int {
	if balance <= 0 {
		return 0
	}
	if monthlyPayment <= 0 {
		return 0
	}

	b := float64(balance)
	p := float64(monthlyPayment)
	r := annualRatePct / 100 / 12

	if r > 0 {
		n := -math.Log(1-r*b/p) / math.Log(1+r)
		if !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0 {
			return int(math.Ceil(n))
		}
	}
	return int(math.Ceil(b / p))
}

// PayoffOrder returns the debts in the order the given strategy retires
// them: avalanche attacks the highest interest rate first, snowball the
// smallest balance first. The input slice is not modified.
func PayoffOrder(debts []models.Debt, strategy models.DebtStrategy) []models.Debt {
	ordered := make([]models.Debt, len(debts))
	copy(ordered, debts)

	switch strategy {
	case models.DebtStrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	default: // avalanche
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].InterestRate > ordered[j].InterestRate
		})
	}
	return ordered
}

// monthlyInterest approximates one month's interest accrual on a balance.
func monthlyInterest(balance int64, annualRatePct float64) int64 {
	return int64(math.Round(float64(balance) * annualRatePct / 100 / 12))
}

// weightedRate is the balance-weighted average annual rate across debts.
func weightedRate(debts []models.Debt) float64 {
	var total, weighted float64
	for i := range debts {
		total += float64(debts[i].Balance)
		weighted += float64(debts[i].Balance) * debts[i].InterestRate
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
