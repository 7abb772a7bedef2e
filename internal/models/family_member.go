package models

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember ties a user to a family with a relationship type. A user
// appears at most once per family.
type FamilyMember struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FamilyID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_user"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_family_user"`
	Type      MemberType `gorm:"not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`

	Family   Family    `gorm:"constraint:OnDelete:CASCADE;foreignKey:FamilyID;references:ID"`
	User     User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID"`
	Incomes  []Income  `gorm:"constraint:OnDelete:CASCADE;foreignKey:FamilyMemberID"`
	Expenses []Expense `gorm:"constraint:OnDelete:CASCADE;foreignKey:FamilyMemberID"`
}
