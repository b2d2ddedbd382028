package googlecalendar

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("event not found")

	// ErrConflict возвращается, когда Google Calendar отклоняет событие из-за конфликта
	ErrConflict = errors.New("googlecalendar client: event conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")
)
