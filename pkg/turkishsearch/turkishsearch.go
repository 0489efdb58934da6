// Package turkishsearch Türkçe büyük/küçük harf kurallarına uygun arama yardımcıları.
// "I" -> "ı" ve "İ" -> "i" dönüşümleri strings.ToLower ile doğru yapılamaz.
package turkishsearch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower metni Türkçe kurallarla küçük harfe çevirir ve kenar boşluklarını atar.
// cases.Caser durum tuttuğu için her çağrıda yenisi oluşturulur.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(strings.TrimSpace(s))
}

// Contains büyük/küçük harf duyarsız alt metin araması; boş iğne her zaman eşleşir.
func Contains(haystack, needle string) bool {
	n := Lower(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Lower(haystack), n)
}

// ContainsAny alanlardan herhangi biri iğneyi içeriyor mu?
func ContainsAny(needle string, fields ...string) bool {
	n := Lower(needle)
	if n == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(Lower(field), n) {
			return true
		}
	}
	return false
}

// SQLFilter veritabanı tarafında kaba LIKE filtresi üretir.
// Türkçe harf katlaması veritabanına göre değiştiği için kesin eşleşme Contains ile yapılmalıdır.
func SQLFilter(column, term string) (string, []interface{}) {
	return "LOWER(" + column + ") LIKE ?", []interface{}{"%" + Lower(term) + "%"}
}
