package twilio

import "errors"

var (
	// ErrCallNotFound возвращается, когда звонок не найден в Twilio
	ErrCallNotFound = errors.New("call not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("twilio client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("twilio client: invalid response")
)
