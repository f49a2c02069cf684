package models

import "time"

// Budget represents a monthly spending cap for a category. Category is
// normalized the same way transaction categories are, so the two match by
// plain string equality.
type Budget struct {
	Base
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Category  string     `gorm:"not null;index" json:"category"`
	Amount    int64      `gorm:"type:bigint;not null" json:"amount"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
}
