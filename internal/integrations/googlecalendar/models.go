package googlecalendar

import "time"

// Event модель события Google Calendar (подмножество полей API v3)
type Event struct {
	ID          string         `json:"id,omitempty"`
	Summary     string         `json:"summary"`
	Description string         `json:"description,omitempty"`
	Start       EventDateTime  `json:"start"`
	End         EventDateTime  `json:"end"`
	Attendees   []Attendee     `json:"attendees,omitempty"`
	Status      string         `json:"status,omitempty"`
	Extended    *ExtendedProps `json:"extendedProperties,omitempty"`
}

// EventDateTime время начала/конца события
type EventDateTime struct {
	DateTime time.Time `json:"dateTime"`
	TimeZone string    `json:"timeZone,omitempty"`
}

// Attendee участник события
type Attendee struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// ExtendedProps приватные метаданные события
// Используются для ключа идемпотентности при повторных запросах
type ExtendedProps struct {
	Private map[string]string `json:"private,omitempty"`
}

// FreeBusyRequest запрос занятых интервалов
type FreeBusyRequest struct {
	TimeMin time.Time          `json:"timeMin"`
	TimeMax time.Time          `json:"timeMax"`
	Items   []FreeBusyCalendar `json:"items"`
}

// FreeBusyCalendar идентификатор календаря в freebusy-запросе
type FreeBusyCalendar struct {
	ID string `json:"id"`
}

// FreeBusyResponse ответ freebusy-запроса
type FreeBusyResponse struct {
	Calendars map[string]FreeBusyInfo `json:"calendars"`
}

// FreeBusyInfo занятые интервалы одного календаря
type FreeBusyInfo struct {
	Busy []TimePeriod `json:"busy"`
}

// TimePeriod занятый интервал [Start, End)
type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ErrorResponse модель ошибки Google API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
