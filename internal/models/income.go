package models

import (
	"time"

	"github.com/google/uuid"
)

// Income is money earned by a family member.
type Income struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FamilyMemberID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title          string         `gorm:"type:text;not null"`
	Category       IncomeCategory `gorm:"not null"`
	Amount         float64        `gorm:"not null"`
	Description    string         `gorm:"type:text"`
	Time           time.Time      `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`

	FamilyMember FamilyMember `gorm:"constraint:OnDelete:CASCADE;foreignKey:FamilyMemberID;references:ID"`
}
