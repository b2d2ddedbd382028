package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	FirstName       string
	LastName        string
	Phone           string
	Email           *string
	ServiceType     string
	StartTime       time.Time
	DurationMinutes int     // 0 означает длительность по умолчанию
	Notes           *string
	CallID          *int64 // звонок, во время которого создана запись (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	CustomerID  int64
	ServiceType string
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	Notes       *string

	ExternalID *string // идентификатор брони во внешнем бэкенде
	Backend    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
