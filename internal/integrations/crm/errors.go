package crm

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в CRM
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена в CRM
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSlotTaken возвращается, когда CRM отклоняет запись на занятое время
	ErrSlotTaken = errors.New("crm client: time slot already taken")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("crm client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("crm client: invalid response")
)
