package models

import "time"

// DebtStrategy represents the payoff ordering strategy for a debt.
type DebtStrategy string

const (
	DebtStrategyAvalanche DebtStrategy = "avalanche"
	DebtStrategySnowball  DebtStrategy = "snowball"
)

// Debt represents an outstanding debt tracked independently of accounts.
// Balance is the outstanding amount in cents (always positive);
// InterestRate is the annual rate in percent.
type Debt struct {
	Base
	UserID       string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string       `gorm:"not null" json:"name"`
	Balance      int64        `gorm:"type:bigint;not null" json:"balance"`
	InterestRate float64      `gorm:"not null;default:0" json:"interest_rate"`
	MinPayment   int64        `gorm:"type:bigint;not null;default:0" json:"min_payment"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	Strategy     DebtStrategy `gorm:"not null;default:'avalanche'" json:"strategy"`
	Notes        string       `json:"notes"`
}
