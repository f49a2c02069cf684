package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/pagination"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account for a user. Value may be negative:
// a carried credit balance enters as a liability from day one.
func (s *accountService) CreateAccount(userID, name string, accountType models.AccountType, value int64, currency, notes string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	switch accountType {
	case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeCredit,
		models.AccountTypeInvestment, models.AccountTypeCash, models.AccountTypeOther:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported account type")
	}

	if currency == "" {
		currency = "USD" // Default currency
	}

	account := &models.Account{
		UserID:   userID,
		Name:     name,
		Type:     accountType,
		Value:    value,
		Currency: currency,
		Notes:    notes,
		IsActive: true,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetUserAccounts retrieves a paginated list of accounts for a user.
func (s *accountService) GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Account{}).Where("user_id = ? AND is_active = ?", userID, true)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID retrieves an account by ID for a specific user
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ? AND is_active = ?", accountID, userID, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount updates an existing account. Only provided fields are applied.
func (s *accountService) UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Value != nil {
		updates["value"] = *fields.Value
	}
	if fields.Currency != nil && *fields.Currency != "" {
		updates["currency"] = *fields.Currency
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := s.db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// DeleteAccount soft-deletes an account.
func (s *accountService) DeleteAccount(userID, accountID string) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AdjustValue applies a signed delta to an account's value within the given
// database transaction. Callers derive the delta from the transaction type,
// never from a stored sign.
func (s *accountService) AdjustValue(tx *gorm.DB, account *models.Account, delta int64) error {
	account.Value += delta
	if err := tx.Model(account).Update("value", account.Value).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
