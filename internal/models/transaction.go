package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
//
// Amount is always stored as a positive magnitude in cents; the signed
// effect on the owning account is derived from Type. Stored signs are
// never trusted. Category is normalized (trimmed, lower-cased) by the
// transaction service before it reaches the database, so budget matching
// is plain string equality.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   string          `gorm:"type:uuid;not null;index" json:"account_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `gorm:"index" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// SignedAmount returns the transaction's effect on its account balance:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
