package models

import "fmt"

// AppointmentType sihirbazın ilk adımında seçilen görüşme türü.
type AppointmentType struct {
	BaseModel
	Slug            string `gorm:"type:varchar(60);uniqueIndex;not null" yaml:"slug"`
	Name            string `gorm:"type:varchar(100);not null" yaml:"name"`
	Description     string `gorm:"type:text" yaml:"description"`
	DurationMinutes int    `gorm:"type:integer;not null" yaml:"duration"`
	Icon            string `gorm:"type:varchar(50)" yaml:"icon"`
	// Birim randevu formunda da listelenir mi?
	ForUnits  bool `gorm:"default:false" yaml:"for_units"`
	SortOrder int  `gorm:"default:0" yaml:"sort_order"`
}

// DurationText "30 dk"
func (t AppointmentType) DurationText() string {
	return fmt.Sprintf("%d dk", t.DurationMinutes)
}

// Label randevu kaydına yazılan "Genel Görüşme (30 dk)" biçimi.
func (t AppointmentType) Label() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.DurationText())
}
