package assistant

import "errors"

var (
	// ErrUnknownFunction возвращается при вызове незарегистрированной функции
	ErrUnknownFunction = errors.New("assistant: unknown function")

	// ErrInvalidArguments возвращается при некорректных аргументах функции
	ErrInvalidArguments = errors.New("assistant: invalid function arguments")
)
