package calls

import "errors"

var (
	// ErrCallNotFound возвращается, когда звонок не найден
	ErrCallNotFound = errors.New("call not found")

	// ErrProviderUnavailable возвращается, когда голосовой провайдер недоступен
	ErrProviderUnavailable = errors.New("voice provider unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
