package database

import (
	"errors"
	"fmt"

	"randevu.link/configs/configslog"
	"randevu.link/database/migrations"
	"randevu.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed adımlarını tek transaction içinde çalıştırır.
// Herhangi bir adım başarısız olursa hiçbir değişiklik kalıcı olmaz.
func Initialize(db *gorm.DB, migrate bool, seed bool) (err error) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
			err = fmt.Errorf("veritabanı başlatma panic: %v", r)
			return
		}
		if err != nil {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err = RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err = CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err = tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları bağımlılık sırasıyla oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"Katalog", migrations.MigrateCatalogTables},
		{"Randevu türü", migrations.MigrateAppointmentTypesTable},
		{"Randevu deposu", migrations.MigrateStorageSlotsTable},
		{"İletişim", migrations.MigrateContactMessagesTable},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon adımı başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Katalog seeder çalıştırılıyor...")
	if err := seeders.SeedCatalog(db); err != nil {
		configslog.Log.Error("Katalog seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Katalog seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
