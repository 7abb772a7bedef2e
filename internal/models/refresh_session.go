package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession stores the single live refresh token for a user. Login
// replaces the row; logout deletes it. Expiry is checked at refresh time,
// expired rows are not reaped in the background.
type RefreshSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	User User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID"`
}
