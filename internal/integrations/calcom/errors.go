package calcom

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в Cal.com
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotTaken возвращается, когда Cal.com отклоняет бронирование занятого слота
	ErrSlotTaken = errors.New("calcom client: slot already taken")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calcom client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("calcom client: invalid response")
)
