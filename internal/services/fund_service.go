package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/metrics"
	"centsible/internal/models"
)

// fundHistoryMonths is the trailing window used to derive a default goal
// from average monthly expenses when none is supplied.
const fundHistoryMonths = 3

// fundService handles emergency-fund business logic.
type fundService struct {
	db *gorm.DB
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB) FundServicer {
	return &fundService{db: db}
}

// GetFund returns the user's emergency fund, or (nil, nil) when the user
// has not set one up.
func (s *fundService) GetFund(userID string) (*models.EmergencyFund, error) {
	var fund models.EmergencyFund
	if err := s.db.Where("user_id = ?", userID).First(&fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &fund, nil
}

// UpsertFund creates the user's single fund row or updates the provided
// fields on the existing one. When a fund is created without an explicit
// goal, the goal defaults to target months times the trailing average of
// monthly expenses.
func (s *fundService) UpsertFund(userID string, currentAmount, goalAmount *int64, targetMonths *int, notes *string, now time.Time) (*models.EmergencyFund, error) {
	if currentAmount != nil && *currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}
	if goalAmount != nil && *goalAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal amount cannot be negative")
	}
	if targetMonths != nil && *targetMonths <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target months must be a positive integer")
	}

	fund, err := s.GetFund(userID)
	if err != nil {
		return nil, err
	}

	if fund == nil {
		fund = &models.EmergencyFund{UserID: userID, TargetMonths: 6}
		if targetMonths != nil {
			fund.TargetMonths = *targetMonths
		}
		if currentAmount != nil {
			fund.CurrentAmount = *currentAmount
		}
		if goalAmount != nil {
			fund.GoalAmount = *goalAmount
		} else {
			avg, err := s.averageMonthlyExpenses(userID, now)
			if err != nil {
				return nil, err
			}
			fund.GoalAmount = int64(fund.TargetMonths) * avg
		}
		if notes != nil {
			fund.Notes = *notes
		}

		if err := s.db.Create(fund).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return fund, nil
	}

	updates := make(map[string]interface{})
	if currentAmount != nil {
		updates["current_amount"] = *currentAmount
	}
	if goalAmount != nil {
		updates["goal_amount"] = *goalAmount
	}
	if targetMonths != nil {
		updates["target_months"] = *targetMonths
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(fund).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", fund.ID).First(fund).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return fund, nil
}

// DeleteFund removes the user's emergency fund.
func (s *fundService) DeleteFund(userID string) error {
	fund, err := s.GetFund(userID)
	if err != nil {
		return err
	}
	if fund == nil {
		return apperrors.ErrFundNotConfigured
	}

	if err := s.db.Delete(fund).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// averageMonthlyExpenses computes the trailing average of expense totals
// used as the basis for a derived fund goal.
func (s *fundService) averageMonthlyExpenses(userID string, now time.Time) (int64, error) {
	since := now.AddDate(0, -fundHistoryMonths, 0)

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND type = ? AND date >= ?",
		userID, models.TransactionTypeExpense, since).Find(&transactions).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return metrics.AverageMonthlyExpenses(transactions, now, fundHistoryMonths), nil
}
