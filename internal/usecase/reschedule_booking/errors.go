package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является клиентом бронирования
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrTooCloseToSession возвращается при попытке переноса ближе cutoff-окна
	// к началу ТЕКУЩЕЙ сессии (защищается существующая сессия, а не новая)
	ErrTooCloseToSession = errors.New("reschedule_booking: too close to session start")

	// ErrIllegalTransition возвращается, когда бронирование нельзя переносить из текущего статуса
	ErrIllegalTransition = errors.New("reschedule_booking: illegal status transition")

	// ErrInvalidDate возвращается при новой дате бронирования в прошлом
	ErrInvalidDate = errors.New("reschedule_booking: new date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
