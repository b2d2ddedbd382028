package calcom

import "time"

// EventType модель типа события Cal.com
type EventType struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Length   int    `json:"length"` // длительность в минутах
	Hidden   bool   `json:"hidden"`
	Position int    `json:"position"`
}

// EventTypesResponse ответ списка типов событий
type EventTypesResponse struct {
	EventTypes []EventType `json:"event_types"`
}

// BookingRequest запрос на создание бронирования
type BookingRequest struct {
	EventTypeID int64          `json:"eventTypeId"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	TimeZone    string         `json:"timeZone"`
	Language    string         `json:"language"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Responses   AttendeeFields `json:"responses"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// AttendeeFields данные участника бронирования
type AttendeeFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Booking модель бронирования Cal.com
type Booking struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// BookingsResponse ответ списка бронирований
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// ErrorResponse модель ошибки Cal.com API
type ErrorResponse struct {
	Message string `json:"message"`
}
