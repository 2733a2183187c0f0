package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateID возвращается при попытке создать бронирование с уже занятым ID
	ErrDuplicateID = errors.New("booking.repository: booking id already exists")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("booking.repository: illegal status transition")
)
