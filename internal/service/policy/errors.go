package policy

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь пытается менять чужую политику
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных значениях политики
	ErrInvalidInput = errors.New("invalid policy data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("policy service: internal error")
)
