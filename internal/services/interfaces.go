package services

import (
	"time"

	"gorm.io/gorm"

	"centsible/internal/metrics"
	"centsible/internal/models"
	"centsible/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AccountUpdateFields holds the optional fields for a partial account update.
type AccountUpdateFields struct {
	Name     *string
	Value    *int64
	Currency *string
	Notes    *string
	IsActive *bool
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name string, accountType models.AccountType, value int64, currency, notes string) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
	AdjustValue(tx *gorm.DB, account *models.Account, delta int64) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      *models.TransactionType
	Category  *string
	MinAmount *int64
	MaxAmount *int64
	AccountID *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID string, transactionType models.TransactionType, amount int64, category, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, category string, amount int64, startDate time.Time, endDate *time.Time) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, category *string, amount *int64, endDate *time.Time, isActive *bool) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// DebtUpdateFields holds the optional fields for a partial debt update.
type DebtUpdateFields struct {
	Name         *string
	Balance      *int64
	InterestRate *float64
	MinPayment   *int64
	DueDate      *time.Time
	Strategy     *models.DebtStrategy
	Notes        *string
}

// DebtProjection pairs a debt with its amortization outcome under a given
// monthly payment.
type DebtProjection struct {
	Debt           models.Debt              `json:"debt"`
	MonthlyPayment int64                    `json:"monthly_payment"`
	Projection     metrics.PayoffProjection `json:"projection"`
}

// PayoffPlan orders all of a user's debts by strategy with per-debt
// projections and aggregate figures.
type PayoffPlan struct {
	Strategy        models.DebtStrategy `json:"strategy"`
	Debts           []DebtProjection    `json:"debts"`
	TotalBalance    int64               `json:"total_balance"`
	MonthlyPayments int64               `json:"monthly_payments"`
	EstimatedMonths int                 `json:"estimated_months"`
}

// DebtServicer defines the contract for debt-related business logic.
type DebtServicer interface {
	CreateDebt(userID, name string, balance int64, interestRate float64, minPayment int64, dueDate *time.Time, strategy models.DebtStrategy, notes string) (*models.Debt, error)
	GetUserDebts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Debt], error)
	GetDebtByID(userID, debtID string) (*models.Debt, error)
	UpdateDebt(userID, debtID string, fields DebtUpdateFields) (*models.Debt, error)
	DeleteDebt(userID, debtID string) error
	GetPayoffProjection(userID, debtID string, extraPayment int64, now time.Time) (*DebtProjection, error)
	GetPayoffPlan(userID string, strategy models.DebtStrategy, now time.Time) (*PayoffPlan, error)
}

// FundServicer defines the contract for emergency-fund business logic.
// GetFund returns (nil, nil) when the user has no fund yet; callers decide
// whether that is an error (the fund endpoint) or a "not set up" state
// (the dashboard).
type FundServicer interface {
	GetFund(userID string) (*models.EmergencyFund, error)
	UpsertFund(userID string, currentAmount, goalAmount *int64, targetMonths *int, notes *string, now time.Time) (*models.EmergencyFund, error)
	DeleteFund(userID string) error
}

// DashboardSummary bundles every derived figure the dashboard's main view
// renders, computed from one consistent snapshot.
type DashboardSummary struct {
	NetWorth metrics.NetWorthSummary `json:"net_worth"`
	Month    metrics.MonthSummary    `json:"month"`
	Debts    metrics.DebtSummary     `json:"debts"`
	Fund     metrics.FundCoverage    `json:"emergency_fund"`
}

// DashboardServicer assembles read-only snapshots and derives metrics from
// them. All database reads happen before any metric is computed.
type DashboardServicer interface {
	GetSummary(userID string, now time.Time) (*DashboardSummary, error)
	GetTrends(userID string, now time.Time, months int) ([]metrics.TrendPoint, error)
	GetExpenseBreakdown(userID string, now time.Time) ([]metrics.CategoryAmount, error)
	GetBudgetProgress(userID string, now time.Time) ([]metrics.BudgetStatus, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
