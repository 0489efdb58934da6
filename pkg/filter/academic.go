package filter

import (
	"strings"

	"randevu.link/pkg/turkishsearch"
)

// FacultyDepartmentKeywords kaba fakülte anahtarını bölüm adı parçalarına eşler.
// Eşleşme tam bir birleştirme değil: parçalardan biri bölüm metninde geçiyorsa kabul edilir.
// Tablo eksiktir ve bilinçli olarak genişletilmemiştir.
var FacultyDepartmentKeywords = map[string][]string{
	"muhendislik":  {"mühendisli"},
	"isletme":      {"işletme"},
	"fen-edebiyat": {"fen edebiyat", "psikoloji", "kimya", "biyoloji", "matematik", "türk dili"},
	"egitim":       {"eğitim"},
}

// AcademicItem filtrelenebilir akademisyen kartı.
type AcademicItem interface {
	FilterName() string
	FilterDepartment() string
}

// AcademicCriteria akademisyen listesi filtre değerleri.
type AcademicCriteria struct {
	Query      string `query:"q"`
	Faculty    string `query:"faculty"`
	Department string `query:"department"`
}

// MatchFaculty boş anahtar her şeyi kabul eder; tabloda olmayan anahtar hiçbir şeyi kabul etmez.
// Anahtarlar ASCII olduğundan Türkçe değil sade küçük harfe çevrilir ("Isletme" -> "isletme").
func MatchFaculty(faculty, department string) bool {
	faculty = strings.ToLower(strings.TrimSpace(faculty))
	if faculty == "" {
		return true
	}
	keywords, ok := FacultyDepartmentKeywords[faculty]
	if !ok {
		return false
	}
	dept := turkishsearch.Lower(department)
	for _, keyword := range keywords {
		if turkishsearch.Contains(dept, keyword) {
			return true
		}
	}
	return false
}

// MatchDepartment boş seçim ya da "Tüm Bölümler" her şeyi kabul eder; diğer seçimlerde
// seçenek metninin " (" öncesi kısmı bölüm metninde aranır.
func MatchDepartment(selected, department string) bool {
	if selected == "" || turkishsearch.Lower(selected) == turkishsearch.Lower(AllDepartments) {
		return true
	}
	return turkishsearch.Contains(department, optionPrefix(selected))
}

// Match metin, fakülte ve bölüm koşullarının hepsini sağlıyor mu?
func (c AcademicCriteria) Match(item AcademicItem) bool {
	return turkishsearch.ContainsAny(c.Query, item.FilterName(), item.FilterDepartment()) &&
		MatchFaculty(c.Faculty, item.FilterDepartment()) &&
		MatchDepartment(c.Department, item.FilterDepartment())
}

// Academics filtreyi uygular.
func Academics[T AcademicItem](items []T, criteria AcademicCriteria) Result[T] {
	return apply(items, func(item T) bool { return criteria.Match(item) }, NoAcademicResults)
}
