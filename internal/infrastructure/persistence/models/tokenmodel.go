package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

// TokenModel is the database persistence model for refresh tokens. One
// account may hold several rows, one per active session.
type TokenModel struct {
	ID           uint   `gorm:"primaryKey"`
	AccountID    uint   `gorm:"not null;index"`
	RefreshToken string `gorm:"size:450;not null;index"`
	Revoked      bool   `gorm:"not null;default:false"`
	ExpiresAt    time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (TokenModel) TableName() string {
	return constants.TableTokens
}
