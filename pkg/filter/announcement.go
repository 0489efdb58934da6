package filter

import (
	"randevu.link/pkg/turkishsearch"
)

// AnnouncementItem filtrelenebilir duyuru kartı.
type AnnouncementItem interface {
	FilterTitle() string
	FilterContent() string
	FilterCategory() string
	FilterDepartment() string
}

// AnnouncementCriteria duyuru listesi filtre değerleri.
type AnnouncementCriteria struct {
	Query      string `query:"q"`
	Category   string `query:"category"`
	Department string `query:"department"`
}

// AllCategories kategori seçiminde filtre uygulanmayan değer.
const AllCategories = "all"

// Match metin başlıkta ya da içerikte geçmeli; kategori ve bölüm değerleri
// kartın ilgili alanında geçmelidir. Boş değerler ve "all" kategorisi filtre uygulamaz.
func (c AnnouncementCriteria) Match(item AnnouncementItem) bool {
	category := c.Category
	if turkishsearch.Lower(category) == AllCategories {
		category = ""
	}
	return turkishsearch.ContainsAny(c.Query, item.FilterTitle(), item.FilterContent()) &&
		turkishsearch.Contains(item.FilterCategory(), category) &&
		turkishsearch.Contains(item.FilterDepartment(), c.Department)
}

// Announcements filtreyi uygular.
func Announcements[T AnnouncementItem](items []T, criteria AnnouncementCriteria) Result[T] {
	return apply(items, func(item T) bool { return criteria.Match(item) }, NoAnnouncementResults)
}
