package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContactMessagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating contact_messages table...")
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		configslog.Log.Error("Failed to migrate contact_messages table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("contact_messages table migrated successfully")
	return nil
}
