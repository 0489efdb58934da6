package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel katalog tablolarının ortak alanları.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id" yaml:"-"`
	CreatedAt time.Time      `json:"created_at" yaml:"-"`
	UpdatedAt time.Time      `json:"updated_at" yaml:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" yaml:"-"`
}
