package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// NormalizeCategory canonicalizes a category string at the storage boundary:
// trimmed and lower-cased, so budget matching is plain string equality.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// CreateTransaction creates a new transaction for a user's account and
// adjusts the account's value by the signed amount. Amount is the unsigned
// magnitude in cents; the sign comes from the transaction type.
func (s *transactionService) CreateTransaction(
	userID, accountID string,
	transactionType models.TransactionType,
	amount int64,
	category, description string,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if accountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	// Get the account to ensure it exists and belongs to the user
	account, err := s.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   account.ID,
		Type:        transactionType,
		Category:    NormalizeCategory(category),
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.accountService.AdjustValue(tx, account, transaction.SignedAmount())
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of all of a user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountTransactions retrieves a paginated, filtered list of transactions for a specific account.
func (s *transactionService) GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	// First verify the account belongs to the user
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	filter.AccountID = &accountID
	return s.GetUserTransactions(userID, page, filter)
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction soft-deletes a transaction and reverses its effect on
// the account's value.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	account, err := s.accountService.GetAccountByID(userID, transaction.AccountID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.accountService.AdjustValue(tx, account, -transaction.SignedAmount())
	})
}

// applyTransactionFilters adds WHERE clauses for each provided filter field.
func applyTransactionFilters(base *gorm.DB, filter TransactionFilter) *gorm.DB {
	if filter.AccountID != nil {
		base = base.Where("account_id = ?", *filter.AccountID)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", NormalizeCategory(*filter.Category))
	}
	if filter.MinAmount != nil {
		base = base.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		base = base.Where("amount <= ?", *filter.MaxAmount)
	}
	return base
}
