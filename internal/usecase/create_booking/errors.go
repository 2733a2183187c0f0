package create_booking

import "errors"

var (
	// ErrLawyerNotFound возвращается, когда юрист не найден в каталоге
	ErrLawyerNotFound = errors.New("create_booking: lawyer not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrDuplicateID возвращается при коллизии ID бронирования
	ErrDuplicateID = errors.New("create_booking: booking id already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
