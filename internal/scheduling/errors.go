package scheduling

import "errors"

var (
	// ErrSlotTaken возвращается, когда провайдер сообщает, что слот уже занят.
	// Вызывающий должен заново запросить доступность и выбрать другой слот,
	// а не повторять запрос вслепую
	ErrSlotTaken = errors.New("scheduling: slot already taken")

	// ErrBookingNotFound возвращается, когда бронирование не найдено у провайдера
	// (для переноса; отмена неизвестного бронирования ошибкой НЕ является)
	ErrBookingNotFound = errors.New("scheduling: booking not found")

	// ErrProvider возвращается при любом другом сбое на стороне провайдера.
	// Вызывающий может повторить запрос с backoff; само ядро повторов не делает
	ErrProvider = errors.New("scheduling: provider failure")

	// ErrUnsupportedProvider возвращается при выборе неизвестного провайдера.
	// Это ошибка конфигурации: сервис должен упасть на старте, до сетевых вызовов
	ErrUnsupportedProvider = errors.New("scheduling: unsupported provider")
)
