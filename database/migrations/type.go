package migrations

import (
	"errors"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"gorm.io/gorm"
)

func MigrateAppointmentTypesTable(db *gorm.DB) error {
	configslog.SLog.Info("appointment_types tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.AppointmentType{}); err != nil {
		errMsg := "appointment_types tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("appointment_types tablosu migrate işlemi tamamlandı.")
	return nil
}
