package models

import (
	"html/template"
	"time"
)

// Announcement duyurular sayfasında ve ana sayfa özetinde listelenir.
// Content markdown olarak saklanır.
type Announcement struct {
	BaseModel
	Slug        string    `gorm:"type:varchar(150);uniqueIndex;not null" yaml:"slug" json:"slug"`
	Title       string    `gorm:"type:varchar(200);not null" yaml:"title" json:"title"`
	Summary     string    `gorm:"type:varchar(500)" yaml:"summary" json:"summary"`
	Content     string    `gorm:"type:text" yaml:"content" json:"content"`
	Category    string    `gorm:"type:varchar(50);index" yaml:"category" json:"category"`
	Department  string    `gorm:"type:varchar(150)" yaml:"department" json:"department"`
	PublishedAt time.Time `gorm:"index" yaml:"published_at" json:"published_at"`

	// Görüntüleme öncesi markdown'dan üretilir
	ContentHTML template.HTML `gorm:"-" yaml:"-" json:"-"`
}

// AnnouncementCategories kategori filtresinin seçenekleri.
var AnnouncementCategories = []string{"Akademik", "Etkinlik", "Genel", "Sınav", "Burs"}

func (a Announcement) FilterTitle() string { return a.Title }

// FilterContent özet ve içerik birlikte aranır.
func (a Announcement) FilterContent() string { return a.Summary + "\n" + a.Content }

func (a Announcement) FilterCategory() string { return a.Category }

func (a Announcement) FilterDepartment() string { return a.Department }
