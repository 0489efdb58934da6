// Package turkishdate randevu kayıtlarındaki "20 Mayıs 2023" biçimli tarih metinleri.
package turkishdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Months Ocak'tan Aralık'a ay adları.
var Months = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Weekdays Pazartesi ile başlayan kısa gün adları.
var Weekdays = [7]string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"}

// Date saat dilimi taşımayan takvim günü.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time günün başlangıcını verilen konumda döner.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	return d.Time(time.UTC).Before(other.Time(time.UTC))
}

func (d Date) IsWeekend() bool {
	wd := d.Time(time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// String "20 Mayıs 2023"
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day, MonthName(d.Month), d.Year)
}

// ISO "2023-05-20", form değerlerinde kullanılır.
func (d Date) ISO() string {
	return d.Time(time.UTC).Format("2006-01-02")
}

func ParseISO(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

// Parse "20 Mayıs 2023" biçimini çözer; ay adları büyük/küçük harf duyarsızdır.
func Parse(value string) (Date, bool) {
	parts := strings.Fields(value)
	if len(parts) != 3 {
		return Date{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return Date{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, false
	}
	for i, name := range Months {
		if strings.EqualFold(name, parts[1]) {
			return Date{Year: year, Month: time.Month(i + 1), Day: day}, true
		}
	}
	return Date{}, false
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return Months[m-1]
}

// MonthTitle takvim başlığı: "Mayıs 2023"
func MonthTitle(year int, month time.Month) string {
	return MonthName(month) + " " + strconv.Itoa(year)
}

// TimeKey "10:30" -> 1030; sıralama için. Geçersiz değerler sona düşer.
func TimeKey(value string) int {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 1 << 30
	}
	h, err1 := strconv.Atoi(hh)
	m, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil {
		return 1 << 30
	}
	return h*100 + m
}
