package turkishdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	d := Date{Year: 2023, Month: time.May, Day: 20}
	assert.Equal(t, "20 Mayıs 2023", d.String())
	assert.Equal(t, "2023-05-20", d.ISO())
	assert.Equal(t, "", Date{}.String())
}

func TestParse(t *testing.T) {
	d, ok := Parse("20 Mayıs 2023")
	require.True(t, ok)
	assert.Equal(t, Date{Year: 2023, Month: time.May, Day: 20}, d)

	_, ok = Parse("20 Floréal 2023")
	assert.False(t, ok)
	_, ok = Parse("Mayıs 2023")
	assert.False(t, ok)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, Date{Year: 2023, Month: time.May, Day: 20}.IsWeekend())  // Cumartesi
	assert.False(t, Date{Year: 2023, Month: time.May, Day: 22}.IsWeekend()) // Pazartesi
}

func TestTimeKey(t *testing.T) {
	assert.Less(t, TimeKey("09:30"), TimeKey("10:00"))
	assert.Less(t, TimeKey("14:00"), TimeKey("bilinmiyor"))
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "Şubat 2024", MonthTitle(2024, time.February))
}
