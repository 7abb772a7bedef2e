package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder. PasswordHash stores the base64 PBKDF2
// derivation, never the plaintext.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:text;not null"`
	Surname      string    `gorm:"type:text;not null"`
	UserName     string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;uniqueIndex;not null"`
	Role         Role      `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Memberships []FamilyMember  `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID"`
	Session     *RefreshSession `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID"`
}
