package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирования недоступен
	ErrBackendUnavailable = errors.New("create_appointment: scheduling backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
