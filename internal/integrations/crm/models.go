package crm

import "time"

// Customer модель клиента в CRM
type Customer struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     string  `json:"phone"`
	Source    string  `json:"source,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CustomersResponse ответ поиска клиентов
type CustomersResponse struct {
	Customers []Customer `json:"customers"`
}

// Appointment модель записи в CRM
type Appointment struct {
	ID          string    `json:"id,omitempty"`
	CustomerID  string    `json:"customer_id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	ServiceType string    `json:"service_type"`
	Status      string    `json:"status,omitempty"`
	Source      string    `json:"source,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// AppointmentsResponse ответ списка записей
type AppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

// ErrorResponse модель ошибки CRM
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
