package models

import (
	"github.com/shopspring/decimal"
)

// Faculty akademisyen filtresindeki kaba fakülte seçimi.
type Faculty struct {
	BaseModel
	Key  string `gorm:"type:varchar(50);uniqueIndex;not null" yaml:"key"`
	Name string `gorm:"type:varchar(150);not null" yaml:"name"`
}

// Department bölüm seçim listesinde "Bölüm (Fakülte)" biçiminde gösterilir.
type Department struct {
	BaseModel
	Name       string `gorm:"type:varchar(150);uniqueIndex;not null" yaml:"name"`
	ShortName  string `gorm:"type:varchar(80)" yaml:"short_name"`
	FacultyKey string `gorm:"type:varchar(50);index" yaml:"faculty"`
	// Birleştirme sırasında doldurulur
	FacultyName string `gorm:"-" yaml:"-"`
}

// OptionText bölüm seçim listesindeki metin.
func (d Department) OptionText() string {
	if d.FacultyName == "" {
		return d.Name
	}
	return d.Name + " (" + d.FacultyName + ")"
}

// Academic randevu verebilen öğretim elemanı.
type Academic struct {
	BaseModel
	Slug            string          `gorm:"type:varchar(100);uniqueIndex;not null" yaml:"slug"`
	Title           string          `gorm:"type:varchar(50)" yaml:"title"`
	Name            string          `gorm:"type:varchar(150);not null" yaml:"name"`
	Department      string          `gorm:"type:varchar(150);index;not null" yaml:"department"`
	Email           string          `gorm:"type:varchar(150)" yaml:"email"`
	ImageURL        string          `gorm:"type:varchar(255)" yaml:"image"`
	Rating          decimal.Decimal `gorm:"type:numeric(3,1);default:0" yaml:"rating"`
	DurationMinutes int             `gorm:"type:integer;default:30" yaml:"duration"`
	// Virgülle ayrılmış "09:00,09:30,..." listesi
	TimeSlots string `gorm:"type:text" yaml:"time_slots"`
	Bio       string `gorm:"type:text" yaml:"bio"`
}

// FullName unvan ve isim.
func (a Academic) FullName() string {
	if a.Title == "" {
		return a.Name
	}
	return a.Title + " " + a.Name
}

// Label "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)"
func (a Academic) Label() string {
	return a.FullName() + " (" + a.Department + ")"
}

// RatingText puanı tek ondalıkla gösterir: "4.8"
func (a Academic) RatingText() string {
	return a.Rating.StringFixed(1)
}

// Slots akademisyenin saatleri; liste boşsa DefaultTimeSlots.
func (a Academic) Slots() []string {
	return ParseSlots(a.TimeSlots)
}

// FilterName ve FilterDepartment akademisyen filtresinin eşleştirdiği alanlar.
func (a Academic) FilterName() string { return a.FullName() }

func (a Academic) FilterDepartment() string { return a.Department }
