package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageSlot tek anahtar altında bütün halinde saklanan JSON belge.
// Randevu koleksiyonu "appointments" anahtarında tutulur.
type StorageSlot struct {
	Key       string         `gorm:"column:slot_key;primaryKey;type:varchar(100)"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
