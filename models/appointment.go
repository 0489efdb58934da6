package models

import (
	"strings"
	"time"
)

// AppointmentStatus randevunun yaşam döngüsündeki durumu.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// AllStatuses liste sekmelerinin sırası.
var AllStatuses = []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

var statusTexts = map[AppointmentStatus]string{
	StatusPending:   "Beklemede",
	StatusConfirmed: "Onaylandı",
	StatusCancelled: "İptal Edildi",
	StatusCompleted: "Tamamlandı",
}

// Text kullanıcıya gösterilen Türkçe durum adı.
func (s AppointmentStatus) Text() string {
	if text, ok := statusTexts[s]; ok {
		return text
	}
	return "Bilinmiyor"
}

// BadgeClass durum rozeti için CSS sınıfı.
func (s AppointmentStatus) BadgeClass() string {
	return "status-" + string(s)
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := statusTexts[s]
	return ok
}

// IsFinal iptal edilmiş ya da tamamlanmış randevular yeniden açılamaz.
func (s AppointmentStatus) IsFinal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ParseStatus sorgu parametresinden durum okur; "all" ve boş değer için ok=false döner.
func ParseStatus(raw string) (AppointmentStatus, bool) {
	status := AppointmentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if status.IsValid() {
		return status, true
	}
	return "", false
}

var emptyTexts = map[AppointmentStatus]string{
	StatusPending:   "Bekleyen randevunuz bulunmamaktadır.",
	StatusConfirmed: "Onaylanmış randevunuz bulunmamaktadır.",
	StatusCancelled: "İptal edilmiş randevunuz bulunmamaktadır.",
	StatusCompleted: "Tamamlanmış randevunuz bulunmamaktadır.",
}

// EmptyText durum sekmesi boşken gösterilen mesaj; boş durum "tümü" sekmesidir.
func (s AppointmentStatus) EmptyText() string {
	if text, ok := emptyTexts[s]; ok {
		return text
	}
	return "Henüz randevunuz bulunmamaktadır."
}

// StatusTab liste sayfalarındaki durum sekmesi.
type StatusTab struct {
	Key    string
	Label  string
	Count  int
	Active bool
}

// StatusTabs "Tümü" ve her durum için sekme üretir. active boş ya da tanınmıyorsa "Tümü" seçilidir.
func StatusTabs(counts map[AppointmentStatus]int, active string) []StatusTab {
	current, ok := ParseStatus(active)
	total := 0
	for _, n := range counts {
		total += n
	}
	tabs := []StatusTab{{Key: "all", Label: "Tümü", Count: total, Active: !ok}}
	for _, status := range AllStatuses {
		tabs = append(tabs, StatusTab{
			Key:    string(status),
			Label:  status.Text(),
			Count:  counts[status],
			Active: ok && status == current,
		})
	}
	return tabs
}

// AppointmentKind kimlik önekinden türetilen randevu çeşidi.
type AppointmentKind string

const (
	KindAcademic AppointmentKind = "RND" // akademisyen randevusu
	KindUnit     AppointmentKind = "BRM" // birim randevusu
)

// Appointment kalıcı koleksiyonda tutulan tek varlık.
// Tarih ve saat görüntüleme metinleridir; sıralama yalnızca CreatedAt ile yapılır.
type Appointment struct {
	ID                string            `json:"id"`
	Type              string            `json:"type"`
	Academic          string            `json:"academic,omitempty"`
	Unit              string            `json:"birim,omitempty"`
	Date              string            `json:"date"`
	Time              string            `json:"time"`
	Status            AppointmentStatus `json:"status"`
	Student           string            `json:"student"`
	StudentDepartment string            `json:"studentDepartment"`
	Notes             string            `json:"notes"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// Kind kimliğin önekine bakar; tanınmayan önekler akademisyen randevusu sayılır.
func (a Appointment) Kind() AppointmentKind {
	if strings.HasPrefix(a.ID, string(KindUnit)+"-") {
		return KindUnit
	}
	return KindAcademic
}

// Target randevunun verildiği kişi ya da birim.
func (a Appointment) Target() string {
	if a.Kind() == KindUnit {
		return a.Unit
	}
	return a.Academic
}

// TargetName "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)" -> "Prof. Dr. Ahmet Yılmaz"
func (a Appointment) TargetName() string {
	name, _ := SplitNameDepartment(a.Target())
	return name
}

// TargetDepartment parantez içindeki bölüm adı, yoksa boş.
func (a Appointment) TargetDepartment() string {
	_, dept := SplitNameDepartment(a.Target())
	return dept
}

// SplitNameDepartment ilk " (" ayırıcısına göre isim ve bölümü ayırır.
func SplitNameDepartment(value string) (string, string) {
	name, rest, found := strings.Cut(value, " (")
	if !found {
		return value, ""
	}
	return name, strings.Replace(rest, ")", "", 1)
}
