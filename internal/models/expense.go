package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense is money spent by a family member.
type Expense struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FamilyMemberID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title          string          `gorm:"type:text;not null"`
	Category       ExpenseCategory `gorm:"not null"`
	Amount         float64         `gorm:"not null"`
	Description    string          `gorm:"type:text"`
	Time           time.Time       `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`

	FamilyMember FamilyMember `gorm:"constraint:OnDelete:CASCADE;foreignKey:FamilyMemberID;references:ID"`
}
