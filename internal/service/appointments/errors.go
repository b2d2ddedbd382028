package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotReschedule возвращается, когда запись не может быть перенесена
	ErrCannotReschedule = errors.New("appointment cannot be rescheduled")

	// ErrSlotNotAvailable возвращается, когда новое время занято
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирования недоступен
	ErrBackendUnavailable = errors.New("scheduling backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
