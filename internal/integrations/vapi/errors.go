package vapi

import "errors"

var (
	// ErrCallNotFound возвращается, когда звонок не найден в Vapi
	ErrCallNotFound = errors.New("call not found")

	// ErrAssistantNotFound возвращается, когда ассистент не найден в Vapi
	ErrAssistantNotFound = errors.New("assistant not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("vapi client: invalid response")
)
