package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.TokenModel{},
		&models.TicketModel{},
		&models.ReplyModel{},
	}
}
