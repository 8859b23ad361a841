package models

import (
	"time"

	"helpdesk/internal/shared/constants"
)

type TicketModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:100;not null;index"`
	Description string    `gorm:"type:text"`
	CreatedByID uint      `gorm:"not null;index"`
	CreatedDate time.Time `gorm:"autoCreateTime;not null;index"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type ReplyModel struct {
	ID          uint      `gorm:"primaryKey"`
	Content     string    `gorm:"type:text;not null"`
	TicketID    uint      `gorm:"not null;index"`
	CreatedByID uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null;index"`
}

func (ReplyModel) TableName() string {
	return constants.TableReplies
}
