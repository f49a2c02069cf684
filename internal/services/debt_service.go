package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/metrics"
	"centsible/internal/models"
	"centsible/internal/pagination"
)

// debtService handles debt-related business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt creates a new debt for a user.
func (s *debtService) CreateDebt(userID, name string, balance int64, interestRate float64, minPayment int64, dueDate *time.Time, strategy models.DebtStrategy, notes string) (*models.Debt, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debt name is required")
	}
	if balance <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debt balance must be greater than zero")
	}
	if interestRate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate cannot be negative")
	}
	if minPayment < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "minimum payment cannot be negative")
	}
	if strategy == "" {
		strategy = models.DebtStrategyAvalanche
	}
	if strategy != models.DebtStrategyAvalanche && strategy != models.DebtStrategySnowball {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "strategy must be avalanche or snowball")
	}

	debt := &models.Debt{
		UserID:       userID,
		Name:         name,
		Balance:      balance,
		InterestRate: interestRate,
		MinPayment:   minPayment,
		DueDate:      dueDate,
		Strategy:     strategy,
		Notes:        notes,
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return debt, nil
}

// GetUserDebts returns a paginated list of debts for the user.
func (s *debtService) GetUserDebts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Debt], error) {
	page.Defaults()

	base := s.db.Model(&models.Debt{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := base.Scopes(pagination.Paginate(page)).Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(debts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDebtByID returns a debt by ID if it belongs to the user.
func (s *debtService) GetDebtByID(userID, debtID string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebt updates an existing debt's fields.
func (s *debtService) UpdateDebt(userID, debtID string, fields DebtUpdateFields) (*models.Debt, error) {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Balance != nil {
		if *fields.Balance <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debt balance must be greater than zero")
		}
		updates["balance"] = *fields.Balance
	}
	if fields.InterestRate != nil {
		if *fields.InterestRate < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate cannot be negative")
		}
		updates["interest_rate"] = *fields.InterestRate
	}
	if fields.MinPayment != nil {
		if *fields.MinPayment < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "minimum payment cannot be negative")
		}
		updates["min_payment"] = *fields.MinPayment
	}
	if fields.DueDate != nil {
		updates["due_date"] = fields.DueDate
	}
	if fields.Strategy != nil {
		if *fields.Strategy != models.DebtStrategyAvalanche && *fields.Strategy != models.DebtStrategySnowball {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "strategy must be avalanche or snowball")
		}
		updates["strategy"] = *fields.Strategy
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(debt).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", debt.ID).First(debt).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return debt, nil
}

// DeleteDebt soft-deletes a debt.
func (s *debtService) DeleteDebt(userID, debtID string) error {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetPayoffProjection amortizes a single debt under its minimum payment
// plus an optional extra monthly payment.
func (s *debtService) GetPayoffProjection(userID, debtID string, extraPayment int64, now time.Time) (*DebtProjection, error) {
	debt, err := s.GetDebtByID(userID, debtID)
	if err != nil {
		return nil, err
	}
	if extraPayment < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "extra payment cannot be negative")
	}

	payment := debt.MinPayment + extraPayment
	return &DebtProjection{
		Debt:           *debt,
		MonthlyPayment: payment,
		Projection:     metrics.PayoffSchedule(debt.Balance, debt.InterestRate, payment, now),
	}, nil
}

// GetPayoffPlan orders all of the user's debts by the given strategy and
// projects each one under its minimum payment, together with aggregate
// payoff figures.
func (s *debtService) GetPayoffPlan(userID string, strategy models.DebtStrategy, now time.Time) (*PayoffPlan, error) {
	var debts []models.Debt
	if err := s.db.Where("user_id = ?", userID).Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if strategy == "" {
		strategy = models.DebtStrategyAvalanche
	}

	plan := &PayoffPlan{Strategy: strategy}
	for _, debt := range metrics.PayoffOrder(debts, strategy) {
		plan.Debts = append(plan.Debts, DebtProjection{
			Debt:           debt,
			MonthlyPayment: debt.MinPayment,
			Projection:     metrics.PayoffSchedule(debt.Balance, debt.InterestRate, debt.MinPayment, now),
		})
		plan.TotalBalance += debt.Balance
		plan.MonthlyPayments += debt.MinPayment
	}
	plan.EstimatedMonths = metrics.SummarizeDebts(debts, 0).EstimatedMonths

	return plan, nil
}
