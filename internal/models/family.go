package models

import (
	"time"

	"github.com/google/uuid"
)

// Family groups accounts that share a budget.
type Family struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Members []FamilyMember `gorm:"constraint:OnDelete:CASCADE;foreignKey:FamilyID"`
}
