package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"randevu.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestAppointment(id string, createdAt time.Time) *models.Appointment {
	return &models.Appointment{
		ID:                id,
		Type:              "Genel Görüşme (30 dk)",
		Academic:          "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)",
		Date:              "20 Mayıs 2023",
		Time:              "10:30",
		Status:            models.StatusPending,
		Student:           "Ayşe Yılmaz",
		StudentDepartment: "Bilgisayar Mühendisliği",
		CreatedAt:         createdAt,
	}
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("sqlite açılamadı: %v", err)
	}
	// :memory: veritabanı bağlantı başına ayrıdır
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.StorageSlot{}); err != nil {
		t.Fatalf("migrate başarısız: %v", err)
	}
	return db
}

func TestQueryReturnsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewMemorySlotStore(), 0)
	base := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230501-1001", base)))
	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230503-1003", base.Add(48*time.Hour))))
	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230502-1002", base.Add(24*time.Hour))))

	all, err := repo.Query(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "RND-20230503-1003", all[0].ID)
	assert.Equal(t, "RND-20230502-1002", all[1].ID)
	assert.Equal(t, "RND-20230501-1001", all[2].ID)
}

func TestQueryOnEmptyStore(t *testing.T) {
	repo := NewAppointmentRepository(NewMemorySlotStore(), 0)
	all, err := repo.Query(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateStatusRewritesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewMemorySlotStore(), 0)
	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230501-1001", time.Now())))

	require.NoError(t, repo.UpdateStatus(ctx, "RND-20230501-1001", models.StatusConfirmed))

	got, err := repo.FindByID(ctx, "RND-20230501-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)

	err = repo.UpdateStatus(ctx, "RND-00000000-0000", models.StatusCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendRejectedWhenQuotaExceeded(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewMemorySlotStore(), 400)
	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230501-1001", time.Now())))

	err := repo.Append(ctx, newTestAppointment("RND-20230501-1002", time.Now()))
	assert.ErrorIs(t, err, ErrStorageQuotaExceeded)

	all, err := repo.Query(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1, "reddedilen yazma koleksiyonu değiştirmemeli")
}

func TestAppendSurfacesStoreErrors(t *testing.T) {
	store := NewMemorySlotStore()
	store.FailWrites = errors.New("disk dolu")
	repo := NewAppointmentRepository(store, 0)

	err := repo.Append(context.Background(), newTestAppointment("RND-20230501-1001", time.Now()))
	assert.EqualError(t, err, "disk dolu")
}

func TestCorruptedCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySlotStore()
	require.NoError(t, store.Save(ctx, AppointmentsSlotKey, []byte("{bozuk")))
	repo := NewAppointmentRepository(store, 0)

	_, err := repo.Query(ctx, nil)
	assert.ErrorIs(t, err, ErrStorageCorrupted)
}

func TestPredicates(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(NewMemorySlotStore(), 0)
	now := time.Now()

	unit := newTestAppointment("BRM-20230501-2001", now)
	unit.Academic = ""
	unit.Unit = "Öğrenci İşleri Daire Başkanlığı"
	confirmed := newTestAppointment("RND-20230501-1002", now.Add(time.Minute))
	confirmed.Status = models.StatusConfirmed

	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230501-1001", now)))
	require.NoError(t, repo.Append(ctx, unit))
	require.NoError(t, repo.Append(ctx, confirmed))

	units, err := repo.Query(ctx, ByKind(models.KindUnit))
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "BRM-20230501-2001", units[0].ID)

	pendingAcademic, err := repo.Query(ctx, And(ByKind(models.KindAcademic), ByStatus(models.StatusPending)))
	require.NoError(t, err)
	require.Len(t, pendingAcademic, 1)
	assert.Equal(t, "RND-20230501-1001", pendingAcademic[0].ID)
}

func TestGormSlotStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewGormSlotStore(newSQLiteDB(t))

	raw, err := store.Load(ctx, AppointmentsSlotKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	repo := NewAppointmentRepository(store, 0)
	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230501-1001", time.Now())))
	require.NoError(t, repo.Append(ctx, newTestAppointment("RND-20230501-1002", time.Now().Add(time.Second))))
	require.NoError(t, repo.UpdateStatus(ctx, "RND-20230501-1001", models.StatusCancelled))

	all, err := repo.Query(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "RND-20230501-1002", all[0].ID)
	assert.Equal(t, models.StatusCancelled, all[1].Status)
}
