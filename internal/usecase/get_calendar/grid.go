package get_calendar

import (
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// startOfWeek возвращает воскресенье, приходящееся на день d или предшествующее ему
func startOfWeek(d time.Time) time.Time {
	d = truncateToDay(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func truncateToDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// WeekDates возвращает ровно 7 дат по возрастанию, начиная с воскресенья,
// в которое попадает anchor.
func WeekDates(anchor time.Time) []time.Time {
	start := startOfWeek(anchor)
	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// MonthDates возвращает ровно 42 даты (6 недель) по возрастанию, начиная
// с воскресенья, в которое попадает первое число месяца anchor. Хвост
// всегда добивается датами следующего месяца до полной сетки.
func MonthDates(anchor time.Time) []time.Time {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	start := startOfWeek(firstOfMonth)
	dates := make([]time.Time, 0, 42)
	for i := 0; i < 42; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// NextAnchor сдвигает якорную дату на один период в указанную сторону
func NextAnchor(anchor time.Time, view domain.CalendarViewMode, direction domain.CalendarDirection) time.Time {
	step := 1
	if direction == domain.DirectionPrev {
		step = -1
	}
	if view == domain.ViewWeek {
		return anchor.AddDate(0, 0, 7*step)
	}
	return anchor.AddDate(0, step, 0)
}

// WeekRange возвращает первую и последнюю даты недельной сетки
func WeekRange(anchor time.Time) (time.Time, time.Time) {
	start := startOfWeek(anchor)
	return start, start.AddDate(0, 0, 6)
}
