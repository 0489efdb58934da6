package wizard

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"randevu.link/pkg/turkishdate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2023-05-17 Çarşamba
var testToday = time.Date(2023, time.May, 17, 9, 0, 0, 0, time.UTC)

var (
	generalType = TypeOption{Slug: "genel-gorusme", Name: "Genel Görüşme", DurationMinutes: 30}
	thesisType  = TypeOption{Slug: "tez-danismanligi", Name: "Tez Danışmanlığı", DurationMinutes: 45}
	ahmet       = AcademicOption{Slug: "ahmet-yilmaz", Name: "Prof. Dr. Ahmet Yılmaz", Department: "Bilgisayar Mühendisliği"}
	ayse        = AcademicOption{Slug: "ayse-kaya", Name: "Doç. Dr. Ayşe Kaya", Department: "İşletme"}
)

func classes(s *State) []string {
	var out []string
	for _, step := range s.Indicator() {
		out = append(out, step.Class)
	}
	return out
}

func TestLinearNavigation(t *testing.T) {
	s := New(testToday)
	assert.Equal(t, StepType, s.Current)

	s.Prev()
	assert.Equal(t, StepType, s.Current, "ilk adımda geri etkisiz")

	s.Next()
	assert.Equal(t, StepAcademic, s.Current)
	s.Next()
	assert.Equal(t, StepDateTime, s.Current)
	s.Next()
	assert.Equal(t, StepSummary, s.Current)
	s.Next()
	assert.Equal(t, StepSummary, s.Current, "son adımda ileri etkisiz")

	assert.Equal(t, []string{"completed", "completed", "completed", "active"}, classes(s))

	s.Prev()
	assert.Equal(t, StepDateTime, s.Current)
	assert.Equal(t, []string{"completed", "completed", "active", ""}, classes(s))
}

func TestPreselectedAcademicSkipsSecondStep(t *testing.T) {
	s := New(testToday)
	s.Preselect(ahmet)

	s.Next()
	assert.Equal(t, StepDateTime, s.Current)
	assert.Equal(t, []string{"completed", "completed", "active", ""}, classes(s))
	require.NotNil(t, s.Academic)
	assert.Equal(t, "ahmet-yilmaz", s.Academic.Slug)

	// atlama yalnızca ilk ilerlemede uygulanır
	s.Prev()
	assert.Equal(t, StepAcademic, s.Current)
	s.Prev()
	s.Next()
	assert.Equal(t, StepAcademic, s.Current)
}

func TestExclusiveSelection(t *testing.T) {
	s := New(testToday)
	s.SelectType(generalType)
	s.SelectType(thesisType)
	s.SelectAcademic(ahmet)
	s.SelectAcademic(ayse)

	assert.Equal(t, "tez-danismanligi", s.Type.Slug)
	assert.Equal(t, "ayse-kaya", s.Academic.Slug)

	require.NoError(t, s.SelectTime("10:30"))
	require.NoError(t, s.SelectTime("14:00"))
	assert.Equal(t, "14:00", s.Time)
}

func TestChangingAcademicDropsTime(t *testing.T) {
	s := New(testToday)
	s.SelectType(generalType)
	s.SelectAcademic(ayse)
	require.NoError(t, s.SelectDate(turkishdate.FromTime(testToday.AddDate(0, 0, 1)), testToday))
	require.NoError(t, s.SelectTime("10:30"))

	s.SelectAcademic(ayse)
	assert.Equal(t, "10:30", s.Time, "aynı akademisyen saati korur")

	s.SelectAcademic(ahmet)
	assert.Empty(t, s.Time)
	assert.NotNil(t, s.Date)

	_, err := s.Submit("RND-20230518-1001")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{MsgTimeRequired}, verr.Messages)
}

func TestSelectDateRejectsPastAndWeekend(t *testing.T) {
	s := New(testToday)

	err := s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 16}, testToday)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	err = s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 20}, testToday)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	require.NoError(t, s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 17}, testToday))
	require.NoError(t, s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 22}, testToday))
	assert.Equal(t, 22, s.Date.Day)
}

func TestSummaryIsDerivedOnEveryCall(t *testing.T) {
	s := New(testToday)
	s.SelectType(generalType)
	s.SelectAcademic(ahmet)
	require.NoError(t, s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 22}, testToday))
	require.NoError(t, s.SelectTime("10:30"))

	sum := s.Summary()
	assert.Equal(t, "Genel Görüşme (30 dk)", sum.Type)
	assert.Equal(t, "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)", sum.Academic)
	assert.Equal(t, "22 Mayıs 2023", sum.Date)
	assert.Equal(t, "10:30", sum.Time)

	s.SelectAcademic(ayse)
	assert.Equal(t, "Doç. Dr. Ayşe Kaya (İşletme)", s.Summary().Academic)
}

func TestValidateReportsEachMissingSelection(t *testing.T) {
	s := New(testToday)

	err := s.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{MsgTypeRequired, MsgAcademicRequired, MsgDateRequired, MsgTimeRequired}, verr.Messages)

	s.SelectType(generalType)
	require.NoError(t, s.SelectTime("10:30"))
	err = s.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{MsgAcademicRequired, MsgDateRequired}, verr.Messages)
}

func TestSubmit(t *testing.T) {
	s := New(testToday)
	sub, err := s.Submit("RND-20230517-1234")
	assert.Nil(t, sub, "eksik seçimle gönderim üretilmemeli")
	assert.Error(t, err)

	s.SelectType(generalType)
	s.SelectAcademic(ahmet)
	require.NoError(t, s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 22}, testToday))
	require.NoError(t, s.SelectTime("10:30"))
	s.SetNotes("  Proje hakkında  ")

	sub, err = s.Submit("RND-20230517-1234")
	require.NoError(t, err)
	assert.Equal(t, &Submission{
		ID:       "RND-20230517-1234",
		Type:     "Genel Görüşme (30 dk)",
		Academic: "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)",
		Date:     "22 Mayıs 2023",
		Time:     "10:30",
		Notes:    "Proje hakkında",
	}, sub)
}

func TestCalendarMonthNavigationKeepsSelection(t *testing.T) {
	s := New(testToday)
	require.NoError(t, s.SelectDate(turkishdate.Date{Year: 2023, Month: time.May, Day: 22}, testToday))

	s.NextMonth()
	assert.Equal(t, "Haziran 2023", s.Calendar(testToday).Title)
	s.PrevMonth()
	s.PrevMonth()
	assert.Equal(t, "Nisan 2023", s.Calendar(testToday).Title)
	s.NextMonth()

	view := s.Calendar(testToday)
	assert.Equal(t, "Mayıs 2023", view.Title)
	require.NotNil(t, s.Date)

	var selected, today []int
	for _, week := range view.Weeks {
		require.Len(t, week, 7)
		for _, day := range week {
			if day.Selected {
				selected = append(selected, day.Day)
			}
			if day.Today {
				today = append(today, day.Day)
			}
		}
	}
	assert.Equal(t, []int{22}, selected)
	assert.Equal(t, []int{17}, today)

	// 1 Mayıs 2023 Pazartesi: ilk hücre dolu, geçmiş olduğu için kapalı
	first := view.Weeks[0][0]
	assert.Equal(t, 1, first.Day)
	assert.True(t, first.Disabled)
	// 20 Mayıs Cumartesi
	assert.True(t, view.Weeks[2][5].Disabled)
	assert.Equal(t, 20, view.Weeks[2][5].Day)
	// 18 Mayıs Perşembe
	assert.False(t, view.Weeks[2][3].Disabled)
}

func TestYearWrapOnMonthNavigation(t *testing.T) {
	s := New(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC))
	s.PrevMonth()
	assert.Equal(t, 2022, s.ViewYear)
	assert.Equal(t, time.December, s.ViewMonth)
}

func TestStateSurvivesJSONRoundTrip(t *testing.T) {
	s := New(testToday)
	s.Preselect(ahmet)
	s.SelectType(generalType)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored State
	require.NoError(t, json.Unmarshal(data, &restored))
	restored.Normalize(testToday)
	restored.Next()
	assert.Equal(t, StepDateTime, restored.Current)
}
