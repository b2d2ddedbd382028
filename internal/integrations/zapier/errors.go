package zapier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("zapier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе вебхука
	ErrInvalidResponse = errors.New("zapier client: invalid response")
)
