// Package wizard randevu alma sihirbazının görünüm modelidir.
//
// Dört adım sırayla ilerler: tür, akademisyen, tarih/saat, özet. Her adımda en fazla
// bir seçim tutulur. Akademisyen önceden seçilmişse birinci adımdan ilk ilerleme
// doğrudan üçüncü adıma atlar. Sayfa, durumun saf bir izdüşümü olarak çizilir.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"randevu.link/pkg/turkishdate"
)

// Step sihirbaz adımı (1'den başlar).
type Step int

const (
	StepType Step = iota + 1
	StepAcademic
	StepDateTime
	StepSummary
)

var stepTitles = map[Step]string{
	StepType:     "Randevu Türü",
	StepAcademic: "Akademisyen",
	StepDateTime: "Tarih & Saat",
	StepSummary:  "Onay",
}

func (s Step) Title() string { return stepTitles[s] }

func (s Step) Valid() bool { return s >= StepType && s <= StepSummary }

// Gönderim doğrulama mesajları; eksik her seçim için ayrı mesaj üretilir.
const (
	MsgTypeRequired     = "Lütfen bir randevu türü seçiniz."
	MsgAcademicRequired = "Lütfen bir akademisyen seçiniz."
	MsgDateRequired     = "Lütfen bir tarih seçiniz."
	MsgTimeRequired     = "Lütfen bir saat seçiniz."
)

// TypeOption seçilen randevu türünün özeti.
type TypeOption struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration"`
}

// Label "Genel Görüşme (30 dk)"
func (t TypeOption) Label() string {
	return fmt.Sprintf("%s (%d dk)", t.Name, t.DurationMinutes)
}

// AcademicOption seçilen akademisyenin özeti.
type AcademicOption struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Label "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)"
func (a AcademicOption) Label() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Department)
}

// State session'da JSON olarak saklanan sihirbaz durumu.
type State struct {
	Current  Step              `json:"current"`
	Type     *TypeOption       `json:"type,omitempty"`
	Academic *AcademicOption   `json:"academic,omitempty"`
	Date     *turkishdate.Date `json:"date,omitempty"`
	Time     string            `json:"time,omitempty"`
	Notes    string            `json:"notes,omitempty"`
	// Ön seçim yapıldıysa birinci adımdan ilk ilerleme ikinci adımı atlar
	SkipAcademic bool `json:"skip_academic,omitempty"`

	ViewYear  int        `json:"view_year"`
	ViewMonth time.Month `json:"view_month"`
}

// New takvimi bugünün ayında açan boş bir sihirbaz oluşturur.
func New(today time.Time) *State {
	return &State{
		Current:   StepType,
		ViewYear:  today.Year(),
		ViewMonth: today.Month(),
	}
}

// Normalize session'dan okunan bozuk değerleri düzeltir.
func (s *State) Normalize(today time.Time) {
	if !s.Current.Valid() {
		s.Current = StepType
	}
	if s.ViewMonth < time.January || s.ViewMonth > time.December || s.ViewYear == 0 {
		s.ViewYear, s.ViewMonth = today.Year(), today.Month()
	}
}

// --- Seçimler (her adımda tek seçim) ---

func (s *State) SelectType(option TypeOption) {
	s.Type = &option
}

// SelectAcademic akademisyen değişirse seçili saat düşer; saatler akademisyene özgüdür.
func (s *State) SelectAcademic(option AcademicOption) {
	if s.Academic == nil || s.Academic.Slug != option.Slug {
		s.Time = ""
	}
	s.Academic = &option
}

// Preselect akademisyeni seçer ve ikinci adımın atlanmasını işaretler.
func (s *State) Preselect(option AcademicOption) {
	s.SelectAcademic(option)
	s.SkipAcademic = true
}

// SelectDate geçmiş günleri ve hafta sonlarını reddeder.
func (s *State) SelectDate(date turkishdate.Date, today time.Time) error {
	if date.IsZero() {
		return ErrDateUnavailable
	}
	if date.Before(turkishdate.FromTime(today)) || date.IsWeekend() {
		return ErrDateUnavailable
	}
	s.Date = &date
	return nil
}

func (s *State) SelectTime(slot string) error {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ErrTimeUnavailable
	}
	s.Time = slot
	return nil
}

func (s *State) SetNotes(notes string) {
	s.Notes = strings.TrimSpace(notes)
}

// --- Gezinme ---

// Next bir sonraki adıma geçer; son adımda etkisizdir.
func (s *State) Next() {
	switch s.Current {
	case StepType:
		if s.SkipAcademic && s.Academic != nil {
			s.SkipAcademic = false
			s.Current = StepDateTime
			return
		}
		s.Current = StepAcademic
	case StepAcademic:
		s.Current = StepDateTime
	case StepDateTime:
		s.Current = StepSummary
	}
}

// Prev bir önceki adıma döner; ilk adımda etkisizdir.
func (s *State) Prev() {
	if s.Current > StepType {
		s.Current--
	}
}

// StepIndicator adım göstergesinin tek bir öğesi.
type StepIndicator struct {
	Number int
	Title  string
	Class  string // "active", "completed" ya da boş
}

// Indicator mevcut adımdan önceki adımları tamamlanmış gösterir; atlanan adım da buna dahildir.
func (s *State) Indicator() []StepIndicator {
	out := make([]StepIndicator, 0, 4)
	for step := StepType; step <= StepSummary; step++ {
		class := ""
		switch {
		case step < s.Current:
			class = "completed"
		case step == s.Current:
			class = "active"
		}
		out = append(out, StepIndicator{Number: int(step), Title: step.Title(), Class: class})
	}
	return out
}

// --- Takvim ---

func (s *State) ShowMonth(year int, month time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	s.ViewYear, s.ViewMonth = t.Year(), t.Month()
}

// PrevMonth ve NextMonth seçili tarihi korur.
func (s *State) PrevMonth() { s.ShowMonth(s.ViewYear, s.ViewMonth-1) }

func (s *State) NextMonth() { s.ShowMonth(s.ViewYear, s.ViewMonth+1) }

// --- Özet ve gönderim ---

// Summary dördüncü adımda gösterilen metinler.
type Summary struct {
	Type     string
	Academic string
	Date     string
	Time     string
	Notes    string
}

// Summary her çağrıda güncel seçimlerden yeniden türetilir, önbelleğe alınmaz.
func (s *State) Summary() Summary {
	var sum Summary
	if s.Type != nil {
		sum.Type = s.Type.Label()
	}
	if s.Academic != nil {
		sum.Academic = s.Academic.Label()
	}
	if s.Date != nil {
		sum.Date = s.Date.String()
	}
	sum.Time = s.Time
	sum.Notes = s.Notes
	return sum
}

// Validate eksik her seçim için sırasıyla (tür, akademisyen, tarih, saat) ayrı mesaj döner.
func (s *State) Validate() error {
	var messages []string
	if s.Type == nil {
		messages = append(messages, MsgTypeRequired)
	}
	if s.Academic == nil {
		messages = append(messages, MsgAcademicRequired)
	}
	if s.Date == nil {
		messages = append(messages, MsgDateRequired)
	}
	if s.Time == "" {
		messages = append(messages, MsgTimeRequired)
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// Submission onay sayfasına taşınan gönderim.
type Submission struct {
	ID       string
	Type     string
	Academic string
	Date     string
	Time     string
	Notes    string
}

// Submit doğrulama geçerse gönderimi üretir; aksi halde hiçbir çıktı üretilmez.
func (s *State) Submit(id string) (*Submission, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sum := s.Summary()
	return &Submission{
		ID:       id,
		Type:     sum.Type,
		Academic: sum.Academic,
		Date:     sum.Date,
		Time:     sum.Time,
		Notes:    sum.Notes,
	}, nil
}
