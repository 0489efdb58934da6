package seeders

import (
	"testing"

	"randevu.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Faculty{}, &models.Department{}, &models.Academic{},
		&models.Unit{}, &models.AppointmentType{}, &models.Announcement{},
	))
	return db
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	require.NotEmpty(t, catalog.Academics)
	ahmet := catalog.Academics[0]
	assert.Equal(t, "ahmet-yilmaz", ahmet.Slug)
	assert.Equal(t, "Prof. Dr. Ahmet Yılmaz", ahmet.FullName())
	assert.Equal(t, "4.8", ahmet.RatingText())

	assert.NotEmpty(t, catalog.Units)
	assert.NotEmpty(t, catalog.Announcements)
	assert.False(t, catalog.Announcements[0].PublishedAt.IsZero())

	forUnits := 0
	for _, typ := range catalog.AppointmentTypes {
		if typ.ForUnits {
			forUnits++
		}
	}
	assert.Positive(t, forUnits)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var academics, types int64
	require.NoError(t, db.Model(&models.Academic{}).Count(&academics).Error)
	require.NoError(t, db.Model(&models.AppointmentType{}).Count(&types).Error)
	assert.Equal(t, int64(len(catalog.Academics)), academics)
	assert.Equal(t, int64(len(catalog.AppointmentTypes)), types)
}
