package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

// AccountModel is the database persistence model for accounts.
// This is the anti-corruption layer between domain and database.
type AccountModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"column:user_name;uniqueIndex;size:20;not null"`
	Email       string `gorm:"uniqueIndex;size:100;not null"`
	Password    string `gorm:"size:100;not null"`
	IsAdmin     bool   `gorm:"not null;default:false"`
	LastLogin   *time.Time
	CreatedDate time.Time `gorm:"autoCreateTime;not null"`

	// No gorm associations: relationships are enforced by foreign keys in
	// the schema and managed by application logic.
}

func (AccountModel) TableName() string {
	return constants.TableAccounts
}
