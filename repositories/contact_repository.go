package repositories

import (
	"context"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	if message == nil {
		return ErrInvalidRecord
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		configslog.Log.Error("İletişim mesajı kaydedilemedi", zap.String("email", message.Email), zap.Error(err))
		return err
	}
	return nil
}

var _ IContactRepository = (*ContactRepository)(nil)
