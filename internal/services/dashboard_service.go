package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/metrics"
	"centsible/internal/models"
)

// trendWindowMonths is the default trailing window for the trend series.
const trendWindowMonths = 6

// dashboardService assembles read-only snapshots of a user's records and
// derives dashboard figures from them via the metrics package. Every fetch
// completes before any metric is computed, so all figures on one response
// describe the same snapshot.
type dashboardService struct {
	db          *gorm.DB
	fundService FundServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, fundService FundServicer) DashboardServicer {
	return &dashboardService{db: db, fundService: fundService}
}

// snapshot is one consistent view of everything the calculator consumes.
type snapshot struct {
	accounts     []models.Account
	transactions []models.Transaction
	budgets      []models.Budget
	debts        []models.Debt
	fund         *models.EmergencyFund
}

// GetSummary computes the main dashboard view: net worth decomposition,
// the current month's aggregates, the debt summary, and emergency-fund
// coverage.
func (s *dashboardService) GetSummary(userID string, now time.Time) (*DashboardSummary, error) {
	snap, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	month := metrics.SummarizeMonth(snap.transactions, now.Year(), now.Month())
	avgExpenses := metrics.AverageMonthlyExpenses(snap.transactions, now, fundHistoryMonths)

	return &DashboardSummary{
		NetWorth: metrics.NetWorth(snap.accounts, snap.debts),
		Month:    month,
		Debts:    metrics.SummarizeDebts(snap.debts, month.Income),
		Fund:     metrics.CoverageForFund(snap.fund, avgExpenses),
	}, nil
}

// GetTrends returns the trailing income/expense/savings series.
func (s *dashboardService) GetTrends(userID string, now time.Time, months int) ([]metrics.TrendPoint, error) {
	if months <= 0 {
		months = trendWindowMonths
	}

	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return metrics.TrendSeries(transactions, now, months), nil
}

// GetExpenseBreakdown returns the current month's per-category expense totals.
func (s *dashboardService) GetExpenseBreakdown(userID string, now time.Time) ([]metrics.CategoryAmount, error) {
	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return metrics.ExpenseBreakdown(transactions, now.Year(), now.Month()), nil
}

// GetBudgetProgress returns per-budget consumption for the current month,
// most-consumed first.
func (s *dashboardService) GetBudgetProgress(userID string, now time.Time) ([]metrics.BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transactions, err := s.loadTransactions(userID)
	if err != nil {
		return nil, err
	}
	return metrics.BudgetProgress(budgets, transactions, now.Year(), now.Month()), nil
}

// loadSnapshot fetches every collection the summary needs before any
// derivation happens.
func (s *dashboardService) loadSnapshot(userID string) (*snapshot, error) {
	snap := &snapshot{}

	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&snap.accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var err error
	if snap.transactions, err = s.loadTransactions(userID); err != nil {
		return nil, err
	}
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&snap.budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("user_id = ?", userID).Find(&snap.debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if snap.fund, err = s.fundService.GetFund(userID); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *dashboardService) loadTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
