package migrations

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCatalogTables fakülte, bölüm, akademisyen, birim ve duyuru tabloları.
func MigrateCatalogTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating catalog tables...")
	err := db.AutoMigrate(
		&models.Faculty{},
		&models.Department{},
		&models.Academic{},
		&models.Unit{},
		&models.Announcement{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate catalog tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Catalog tables migrated successfully")
	return nil
}
