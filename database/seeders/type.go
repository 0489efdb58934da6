package seeders

import (
	"randevu.link/configs/configslog"
	"randevu.link/models"

	"gorm.io/gorm"
)

// SeedAppointmentTypes sihirbaz ve birim formundaki randevu türlerini ekler.
// Birim formunda en az bir tür listelenmelidir.
func SeedAppointmentTypes(db *gorm.DB, types []models.AppointmentType) error {
	forUnits := 0
	for _, t := range types {
		if t.ForUnits {
			forUnits++
		}
	}
	if forUnits == 0 {
		configslog.SLog.Warn("Katalogda birimler için randevu türü yok, birim formu boş kalacak.")
	}
	return seedMissing(db, "randevu türü", "slug", types, func(t models.AppointmentType) string { return t.Slug })
}
