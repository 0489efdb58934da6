package repositories

import (
	"context"
	"errors"
	"fmt"

	"randevu.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IBaseRepository katalog tabloları için ortak okuma işlemleri.
type IBaseRepository[T any] interface {
	FindAll(ctx context.Context, order string) ([]T, error)
	FindBySlug(ctx context.Context, slug string) (*T, error)
}

// BaseRepository IBaseRepository'nin GORM uygulaması.
type BaseRepository[T any] struct {
	db           *gorm.DB
	defaultOrder string
}

func NewBaseRepository[T any](db *gorm.DB, defaultOrder string) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, defaultOrder: defaultOrder}
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll tüm kayıtları verilen ya da varsayılan sırayla döner.
func (r *BaseRepository[T]) FindAll(ctx context.Context, order string) ([]T, error) {
	if order == "" {
		order = r.defaultOrder
	}
	var items []T
	query := r.getDB(ctx)
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&items).Error; err != nil {
		var zero T
		configslog.Log.Error("BaseRepository.FindAll: DB error", zap.String("model", modelName(zero)), zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (r *BaseRepository[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var item T
	err := r.getDB(ctx).Where("slug = ?", slug).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BaseRepository.FindBySlug: DB error", zap.String("model", modelName(item)), zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func modelName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
