package repositories

import (
	"context"
	"errors"
	"sync"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ISlotStore anahtar başına tek bir JSON belgesi saklayan kalıcı alan.
// Load, anahtar hiç yazılmamışsa (nil, nil) döner.
type ISlotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// GormSlotStore belgeleri storage_slots tablosunda tutar.
type GormSlotStore struct {
	db *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) *GormSlotStore {
	return &GormSlotStore{db: db}
}

func (s *GormSlotStore) getDB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *GormSlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var slot models.StorageSlot
	err := s.getDB(ctx).Where("slot_key = ?", key).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		configslog.Log.Error("GormSlotStore.Load: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return []byte(slot.Value), nil
}

// Save belgeyi tek bir upsert ile bütün olarak yazar.
func (s *GormSlotStore) Save(ctx context.Context, key string, value []byte) error {
	slot := models.StorageSlot{Key: key, Value: datatypes.JSON(value)}
	err := s.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		configslog.Log.Error("GormSlotStore.Save: DB error", zap.String("key", key), zap.Int("bytes", len(value)), zap.Error(err))
		return err
	}
	return nil
}

var _ ISlotStore = (*GormSlotStore)(nil)

// MemorySlotStore testler ve geliştirme için bellek içi depo.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
	// FailWrites doluysa Save bu hatayı döner (kota senaryoları için)
	FailWrites error
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

func (s *MemorySlotStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemorySlotStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[key] = stored
	return nil
}

var _ ISlotStore = (*MemorySlotStore)(nil)
