package seeders

import (
	_ "embed"
	"errors"
	"fmt"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog gömülü başlangıç kataloğu.
type Catalog struct {
	Faculties        []models.Faculty         `yaml:"faculties"`
	Departments      []models.Department      `yaml:"departments"`
	Academics        []models.Academic        `yaml:"academics"`
	Units            []models.Unit            `yaml:"units"`
	AppointmentTypes []models.AppointmentType `yaml:"appointment_types"`
	Announcements    []models.Announcement    `yaml:"announcements"`
}

// LoadCatalog gömülü YAML'ı çözer.
func LoadCatalog() (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return nil, fmt.Errorf("katalog okunamadı: %w", err)
	}
	return &catalog, nil
}

// SeedCatalog kataloğu sırayla ekler. Var olan kayıtlar değiştirilmez.
func SeedCatalog(db *gorm.DB) error {
	catalog, err := LoadCatalog()
	if err != nil {
		configslog.Log.Error("Katalog dosyası çözülemedi", zap.Error(err))
		return err
	}

	steps := []func() error{
		func() error {
			return seedMissing(db, "fakülte", "key", catalog.Faculties, func(f models.Faculty) string { return f.Key })
		},
		func() error {
			return seedMissing(db, "bölüm", "name", catalog.Departments, func(d models.Department) string { return d.Name })
		},
		func() error {
			return seedMissing(db, "akademisyen", "slug", catalog.Academics, func(a models.Academic) string { return a.Slug })
		},
		func() error {
			return seedMissing(db, "birim", "slug", catalog.Units, func(u models.Unit) string { return u.Slug })
		},
		func() error { return SeedAppointmentTypes(db, catalog.AppointmentTypes) },
		func() error {
			return seedMissing(db, "duyuru", "slug", catalog.Announcements, func(a models.Announcement) string { return a.Slug })
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// seedMissing benzersiz sütuna göre olmayan kayıtları ekler; bir hata diğer kayıtları durdurmaz.
func seedMissing[T any](db *gorm.DB, label, column string, items []T, key func(T) string) error {
	var createdCount int64
	errorOccurred := false

	configslog.SLog.Infof("%s kayıtları seed işlemi başlıyor...", label)

	for _, item := range items {
		value := key(item)
		var existing T
		result := db.Where(column+" = ?", value).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("%s '%s' zaten mevcut, oluşturma atlanıyor.", label, value)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kayıt kontrol edilirken veritabanı hatası",
				zap.String("label", label),
				zap.String("key", value),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		record := item
		if err := db.Create(&record).Error; err != nil {
			configslog.Log.Error("Kayıt oluşturulamadı",
				zap.String("label", label),
				zap.String("key", value),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni %s kaydı seed edildi.", createdCount, label)
	} else if !errorOccurred {
		configslog.SLog.Infof("Tüm %s kayıtları zaten mevcut, yeni ekleme yapılmadı.", label)
	}

	if errorOccurred {
		return fmt.Errorf("%s kayıtları seed edilirken en az bir hata oluştu", label)
	}
	return nil
}
