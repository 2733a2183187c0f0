package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekDates(t *testing.T) {
	anchors := []time.Time{
		date(2025, time.April, 6),  // воскресенье
		date(2025, time.April, 9),  // среда
		date(2025, time.April, 12), // суббота
		date(2024, time.December, 31),
		date(2025, time.January, 1),
		date(2024, time.February, 29), // високосный год
	}

	for _, anchor := range anchors {
		dates := WeekDates(anchor)

		require.Len(t, dates, 7, "anchor %s", anchor.Format(domain.DateFormat))
		assert.Equal(t, time.Sunday, dates[0].Weekday())
		assert.False(t, dates[0].After(anchor))

		for i := 1; i < len(dates); i++ {
			assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
		}
	}
}

func TestWeekDatesContainsAnchor(t *testing.T) {
	anchor := date(2025, time.April, 9)
	dates := WeekDates(anchor)

	found := false
	for _, d := range dates {
		if d.Equal(anchor) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMonthDates(t *testing.T) {
	anchors := []time.Time{
		date(2025, time.April, 1),
		date(2025, time.April, 15),
		date(2025, time.April, 30),
		date(2025, time.February, 14),
		date(2024, time.February, 14), // високосный февраль
		date(2025, time.June, 1),      // 1-е число — воскресенье
		date(2025, time.December, 31),
	}

	for _, anchor := range anchors {
		dates := MonthDates(anchor)

		require.Len(t, dates, 42, "anchor %s", anchor.Format(domain.DateFormat))
		assert.Equal(t, time.Sunday, dates[0].Weekday())

		firstOfMonth := date(anchor.Year(), anchor.Month(), 1)
		assert.False(t, dates[0].After(firstOfMonth))

		for i := 1; i < len(dates); i++ {
			assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
		}
	}
}

func TestMonthDatesSameGridForWholeMonth(t *testing.T) {
	// любая якорная дата внутри месяца даёт одну и ту же сетку
	first := MonthDates(date(2025, time.April, 1))
	mid := MonthDates(date(2025, time.April, 17))
	last := MonthDates(date(2025, time.April, 30))

	assert.Equal(t, first, mid)
	assert.Equal(t, first, last)
}

func TestMonthDatesFirstIsSunday(t *testing.T) {
	// 1 июня 2025 — воскресенье: сетка начинается прямо с него
	dates := MonthDates(date(2025, time.June, 1))

	assert.Equal(t, date(2025, time.June, 1), dates[0])
	assert.Equal(t, date(2025, time.July, 12), dates[41])
}

func TestNextAnchor(t *testing.T) {
	anchor := date(2025, time.April, 9)

	assert.Equal(t, date(2025, time.April, 16), NextAnchor(anchor, domain.ViewWeek, domain.DirectionNext))
	assert.Equal(t, date(2025, time.April, 2), NextAnchor(anchor, domain.ViewWeek, domain.DirectionPrev))
	assert.Equal(t, date(2025, time.May, 9), NextAnchor(anchor, domain.ViewMonth, domain.DirectionNext))
	assert.Equal(t, date(2025, time.March, 9), NextAnchor(anchor, domain.ViewMonth, domain.DirectionPrev))
}

func TestNextAnchorYearBoundary(t *testing.T) {
	anchor := date(2024, time.December, 30)

	assert.Equal(t, date(2025, time.January, 6), NextAnchor(anchor, domain.ViewWeek, domain.DirectionNext))
	assert.Equal(t, date(2025, time.January, 30), NextAnchor(anchor, domain.ViewMonth, domain.DirectionNext))
}

func TestWeekRange(t *testing.T) {
	first, last := WeekRange(date(2025, time.April, 9))

	assert.Equal(t, date(2025, time.April, 6), first)
	assert.Equal(t, date(2025, time.April, 12), last)
	assert.Equal(t, time.Sunday, first.Weekday())
	assert.Equal(t, time.Saturday, last.Weekday())
}
