package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage iletişim formundan gelen mesaj.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null" form:"name"`
	Email     string    `gorm:"type:varchar(150);not null" form:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" form:"subject"`
	Message   string    `gorm:"type:text;not null" form:"message"`
	CreatedAt time.Time
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
