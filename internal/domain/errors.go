package domain

import "errors"

var (
	// ErrInvalidInterval возвращается при попытке создать интервал с end <= start
	ErrInvalidInterval = errors.New("domain: interval end must be after start")

	// ErrValidation возвращается при нарушении инвариантов доменной модели
	// Сообщение всегда содержит имя поля, вызвавшего ошибку
	ErrValidation = errors.New("domain: validation failed")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса записи
	ErrInvalidTransition = errors.New("domain: invalid status transition")
)
