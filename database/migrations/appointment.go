package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateStorageSlotsTable randevu koleksiyonunun tutulduğu storage_slots tablosu.
func MigrateStorageSlotsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating storage_slots table...")
	err := db.AutoMigrate(&models.StorageSlot{})
	if err != nil {
		configslog.Log.Error("Failed to migrate storage_slots table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("storage_slots table migrated successfully")
	return nil
}
