package models

// EmergencyFund represents a user's emergency savings goal. Each user has at
// most one fund row (unique index on UserID). GoalAmount is typically derived
// as TargetMonths x average monthly expenses but remains independently
// editable.
type EmergencyFund struct {
	Base
	UserID        string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CurrentAmount int64  `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	GoalAmount    int64  `gorm:"type:bigint;not null;default:0" json:"goal_amount"`
	TargetMonths  int    `gorm:"not null;default:6" json:"target_months"`
	Notes         string `json:"notes"`
}
