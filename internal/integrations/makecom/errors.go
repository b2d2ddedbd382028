package makecom

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("makecom client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе вебхука
	ErrInvalidResponse = errors.New("makecom client: invalid response")
)
