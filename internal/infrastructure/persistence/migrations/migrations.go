package migrations

import (
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
)

func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.FeedbackModel{},
	)
}
