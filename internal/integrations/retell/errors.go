package retell

import "errors"

var (
	// ErrCallNotFound возвращается, когда звонок не найден в Retell
	ErrCallNotFound = errors.New("call not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("retell client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("retell client: invalid response")
)
