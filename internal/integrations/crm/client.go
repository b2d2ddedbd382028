package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Источник, проставляемый во все создаваемые сущности
const sourceTag = "phone_call_assistant"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с generic CRM
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CRM
func NewClient(apiKey, baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCustomer создает клиента в CRM
func (c *Client) CreateCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	customer.Source = sourceTag

	var created Customer
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/customers", customer, &created); err != nil {
		return nil, err
	}

	c.log.Info("Created CRM customer id=%s", created.ID)
	return &created, nil
}

// FindCustomerByPhone ищет клиента по номеру телефона.
// Отсутствие клиента — ожидаемый результат, а не сбой провайдера,
// поэтому возвращается ErrCustomerNotFound.
func (c *Client) FindCustomerByPhone(ctx context.Context, phone string) (*Customer, error) {
	endpoint := fmt.Sprintf("%s/customers/search?phone=%s", c.baseURL, url.QueryEscape(phone))

	var resp CustomersResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Customers) == 0 {
		return nil, ErrCustomerNotFound
	}

	return &resp.Customers[0], nil
}

// CreateAppointment создает запись в CRM
func (c *Client) CreateAppointment(ctx context.Context, appointment *Appointment) (*Appointment, error) {
	appointment.Source = sourceTag
	appointment.Status = "scheduled"

	var created Appointment
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/appointments", appointment, &created); err != nil {
		return nil, err
	}

	c.log.Info("Created CRM appointment id=%s", created.ID)
	return &created, nil
}

// GetAppointmentsBetween получает записи за период [from, to)
func (c *Client) GetAppointmentsBetween(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments?from=%s&to=%s",
		c.baseURL,
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)),
	)

	var resp AppointmentsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Appointments, nil
}

// CancelAppointment отменяет запись с указанием причины
func (c *Client) CancelAppointment(ctx context.Context, appointmentID, reason string) error {
	endpoint := fmt.Sprintf("%s/appointments/%s", c.baseURL, url.PathEscape(appointmentID))

	payload := map[string]string{
		"status":              "cancelled",
		"cancellation_reason": reason,
	}

	if err := c.do(ctx, http.MethodPatch, endpoint, payload, nil); err != nil {
		return err
	}

	c.log.Info("Cancelled CRM appointment id=%s", appointmentID)
	return nil
}

// RescheduleAppointment переносит запись на новое время (обновление на месте)
func (c *Client) RescheduleAppointment(ctx context.Context, appointmentID string, newStart, newEnd time.Time) error {
	endpoint := fmt.Sprintf("%s/appointments/%s", c.baseURL, url.PathEscape(appointmentID))

	payload := map[string]string{
		"start_time": newStart.UTC().Format(time.RFC3339),
		"end_time":   newEnd.UTC().Format(time.RFC3339),
	}

	if err := c.do(ctx, http.MethodPatch, endpoint, payload, nil); err != nil {
		return err
	}

	c.log.Info("Rescheduled CRM appointment id=%s to %s", appointmentID, newStart.Format(time.RFC3339))
	return nil
}

// do выполняет HTTP запрос с авторизацией и обработкой статус-кодов
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrAppointmentNotFound
	case http.StatusConflict:
		return ErrSlotTaken
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
