package models

import "strings"

// DefaultTimeSlots kendi saat listesi olmayan akademisyen ve birimler için.
var DefaultTimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
}

// ParseSlots virgülle ayrılmış "09:00,09:30" listesini ayırır; boşsa DefaultTimeSlots döner.
func ParseSlots(csv string) []string {
	var slots []string
	for _, slot := range strings.Split(csv, ",") {
		if slot = strings.TrimSpace(slot); slot != "" {
			slots = append(slots, slot)
		}
	}
	if len(slots) == 0 {
		return DefaultTimeSlots
	}
	return slots
}

// Unit idari birim (Öğrenci İşleri, Kütüphane...). Birim randevuları BRM önekini alır.
type Unit struct {
	BaseModel
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null" yaml:"slug"`
	Name        string `gorm:"type:varchar(150);not null" yaml:"name"`
	Description string `gorm:"type:text" yaml:"description"`
	Location    string `gorm:"type:varchar(200)" yaml:"location"`
	Phone       string `gorm:"type:varchar(30)" yaml:"phone"`
	TimeSlots   string `gorm:"type:text" yaml:"time_slots"`
}

func (u Unit) Slots() []string {
	return ParseSlots(u.TimeSlots)
}
