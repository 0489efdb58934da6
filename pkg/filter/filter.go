// Package filter akademisyen ve duyuru listelerinin arama filtreleri.
//
// Her filtre serbest metin eşleşmesini kategorik seçimlerle VE mantığıyla birleştirir.
// Karşılaştırmalar Türkçe harf kurallarıyla büyük/küçük harf duyarsızdır.
package filter

import "strings"

// Boş sonuç bildirimleri.
const (
	NoAcademicResults     = "Aramanıza uygun sonuç bulunamadı. Lütfen farklı arama kriterleri deneyiniz."
	NoAnnouncementResults = "Aramanıza uygun duyuru bulunamadı. Lütfen farklı arama kriterleri deneyiniz."
)

// AllDepartments bölüm seçiminde filtre uygulanmayan seçenek.
const AllDepartments = "Tüm Bölümler"

// Result bir filtre geçişinin çıktısı. NoResults true ise boş sonuç bildirimi tek kez,
// filtre kontrollerinin hemen ardından gösterilir; aksi halde hiç çizilmez.
type Result[T any] struct {
	Items     []T
	Total     int
	NoResults bool
	Notice    string
}

func apply[T any](items []T, match func(T) bool, notice string) Result[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	r := Result[T]{Items: out, Total: len(items)}
	if len(out) == 0 {
		r.NoResults = true
		r.Notice = notice
	}
	return r
}

// optionPrefix "Bilgisayar Mühendisliği (Mühendislik Fakültesi)" -> "Bilgisayar Mühendisliği"
func optionPrefix(option string) string {
	prefix, _, _ := strings.Cut(option, " (")
	return prefix
}
