package voiceai

import "errors"

var (
	// ErrUnsupportedProvider возвращается при неизвестном голосовом провайдере
	ErrUnsupportedProvider = errors.New("voiceai: unsupported provider")

	// ErrCallNotFound возвращается, когда звонок не найден у провайдера
	ErrCallNotFound = errors.New("voiceai: call not found")

	// ErrProvider возвращается при ошибке на стороне голосового провайдера
	ErrProvider = errors.New("voiceai: provider error")
)
