package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату "h:mm AM/PM"
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected h:mm AM or h:mm PM")
)

const (
	markerAM = "AM"
	markerPM = "PM"

	minutesPerDay = 24 * 60
)

// TimeString время сеанса в 12-часовом формате с маркером AM/PM, например "10:00 AM" или "2:30 PM".
// Хранится как строка и валидируется при парсинге. Единственная точка разбора
// такого времени в сервисе - не дублировать логику AM/PM по другим пакетам.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	hour := t.Hour()
	marker := markerAM
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		marker = markerPM
	case hour > 12:
		hour -= 12
		marker = markerPM
	}
	return TimeString(fmt.Sprintf("%d:%02d %s", hour, t.Minute(), marker))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Validate проверяет, что строка соответствует формату "h:mm AM/PM"
func (t TimeString) Validate() error {
	_, err := t.MinutesFromMidnight()
	return err
}

// MinutesFromMidnight возвращает количество минут с начала суток.
// Правила разбора: 12 AM -> 0 часов, 12 PM -> 12 часов, иначе PM добавляет 12.
func (t TimeString) MinutesFromMidnight() (int, error) {
	raw := strings.TrimSpace(string(t))

	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	marker := strings.ToUpper(fields[1])
	if marker != markerAM && marker != markerPM {
		return 0, fmt.Errorf("%w: unknown marker %q", ErrInvalidTimeFormat, fields[1])
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: invalid hour %q", ErrInvalidTimeFormat, hm[0])
	}

	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 || len(hm[1]) != 2 {
		return 0, fmt.Errorf("%w: invalid minute %q", ErrInvalidTimeFormat, hm[1])
	}

	// 12 AM - полночь, 12 PM - полдень
	if hour == 12 {
		hour = 0
	}
	if marker == markerPM {
		hour += 12
	}

	return hour*60 + minute, nil
}

// IsBefore возвращает true, если время строго раньше other.
// Оба времени должны быть валидными, иначе результат false.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.MinutesFromMidnight()
	if err != nil {
		return false
	}
	b, err := other.MinutesFromMidnight()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.MinutesFromMidnight()
	if err != nil {
		return false
	}
	b, err := other.MinutesFromMidnight()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Переход через полночь заворачивается в пределах суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}

	total = (total + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}

	hour := total / 60
	minute := total % 60

	marker := markerAM
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		marker = markerPM
	case hour > 12:
		hour -= 12
		marker = markerPM
	}

	return TimeString(fmt.Sprintf("%d:%02d %s", hour, minute, marker)), nil
}
