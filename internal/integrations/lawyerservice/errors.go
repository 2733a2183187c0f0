package lawyerservice

import "errors"

var (
	// ErrLawyerNotFound возвращается, когда юрист не найден в каталоге
	ErrLawyerNotFound = errors.New("lawyerservice: lawyer not found")

	// ErrInvalidResponse возвращается при некорректном ответе каталога
	ErrInvalidResponse = errors.New("lawyerservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lawyerservice: internal error")
)
