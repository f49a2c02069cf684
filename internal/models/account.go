package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCash       AccountType = "cash"
	AccountTypeOther      AccountType = "other"
)

// Account represents a financial account in the system. Value is signed:
// a positive value is an asset, a negative value (e.g. a carried credit-card
// balance) is a liability. The sign is the sole asset/liability classifier.
type Account struct {
	Base
	UserID   string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string      `gorm:"not null" json:"name"`
	Type     AccountType `gorm:"not null" json:"type"`
	Value    int64       `gorm:"type:bigint;not null;default:0" json:"value"`
	Currency string      `gorm:"not null;default:'USD'" json:"currency"`
	Notes    string      `json:"notes"`
	IsActive bool        `gorm:"default:true" json:"is_active"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
