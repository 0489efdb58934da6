package wizard

import (
	"time"

	"randevu.link/pkg/turkishdate"
)

// CalendarDay takvim ızgarasındaki tek hücre; Day == 0 boş hücredir.
type CalendarDay struct {
	Day      int
	ISO      string
	Disabled bool
	Selected bool
	Today    bool
}

// CalendarView görüntülenen ayın haftalara bölünmüş hali (Pazartesi başlangıçlı).
type CalendarView struct {
	Title    string
	Year     int
	Month    time.Month
	Weekdays [7]string
	Weeks    [][]CalendarDay
}

// Calendar görüntülenen ayı çizer. Geçmiş günler ve hafta sonları seçilemez.
func (s *State) Calendar(today time.Time) CalendarView {
	view := CalendarView{
		Title:    turkishdate.MonthTitle(s.ViewYear, s.ViewMonth),
		Year:     s.ViewYear,
		Month:    s.ViewMonth,
		Weekdays: turkishdate.Weekdays,
	}

	first := time.Date(s.ViewYear, s.ViewMonth, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	// time.Weekday Pazar=0; Pazartesi başlangıçlı sütun indeksi
	offset := (int(first.Weekday()) + 6) % 7
	todayDate := turkishdate.FromTime(today)

	week := make([]CalendarDay, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := turkishdate.Date{Year: s.ViewYear, Month: s.ViewMonth, Day: day}
		week = append(week, CalendarDay{
			Day:      day,
			ISO:      date.ISO(),
			Disabled: date.Before(todayDate) || date.IsWeekend(),
			Selected: s.Date != nil && *s.Date == date,
			Today:    date == todayDate,
		})
		if len(week) == 7 {
			view.Weeks = append(view.Weeks, week)
			week = make([]CalendarDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarDay{})
		}
		view.Weeks = append(view.Weeks, week)
	}
	return view
}
