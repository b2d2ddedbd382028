package automation

import "errors"

var (
	// ErrUnsupportedProvider возвращается при неизвестном провайдере автоматизации
	ErrUnsupportedProvider = errors.New("automation: unsupported provider")

	// ErrDelivery возвращается, когда событие не удалось доставить
	ErrDelivery = errors.New("automation: delivery failed")
)
