package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new monthly spending cap for a category.
func (s *budgetService) CreateBudget(userID, category string, amount int64, startDate time.Time, endDate *time.Time) (*models.Budget, error) {
	category = NormalizeCategory(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget category is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}

	budget := &models.Budget{
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  true,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user with an
// optional is_active filter.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields.
func (s *budgetService) UpdateBudget(userID, budgetID string, category *string, amount *int64, endDate *time.Time, isActive *bool) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if category != nil {
		normalized := NormalizeCategory(*category)
		if normalized == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget category cannot be empty")
		}
		updates["category"] = normalized
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if endDate != nil {
		updates["end_date"] = endDate
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", budget.ID).First(budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
