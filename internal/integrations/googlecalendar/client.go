package googlecalendar

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

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Google Calendar API v3.
// Токен доступа приходит из конфигурации; обновление OAuth-токена
// выполняется вне сервиса (см. настройку деплоя).
type Client struct {
	baseURL    string
	calendarID string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Google Calendar
func NewClient(token, calendarID string, timeout time.Duration, log Logger) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{
		baseURL:    defaultBaseURL,
		calendarID: calendarID,
		token:      token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateEvent создает событие в календаре
func (c *Client) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))

	var created Event
	if err := c.do(ctx, http.MethodPost, endpoint, event, &created); err != nil {
		return nil, err
	}

	c.log.Info("Created Google Calendar event id=%s", created.ID)
	return &created, nil
}

// GetEvent получает событие по ID
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	var event Event
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &event); err != nil {
		return nil, err
	}

	return &event, nil
}

// UpdateEvent обновляет событие (PATCH, частичное обновление)
func (c *Client) UpdateEvent(ctx context.Context, eventID string, event *Event) (*Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	var updated Event
	if err := c.do(ctx, http.MethodPatch, endpoint, event, &updated); err != nil {
		return nil, err
	}

	c.log.Info("Updated Google Calendar event id=%s", eventID)
	return &updated, nil
}

// DeleteEvent удаляет событие из календаря
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	if err := c.do(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return err
	}

	c.log.Info("Deleted Google Calendar event id=%s", eventID)
	return nil
}

// GetBusyTimes получает занятые интервалы календаря за период [start, end)
func (c *Client) GetBusyTimes(ctx context.Context, start, end time.Time) ([]TimePeriod, error) {
	endpoint := fmt.Sprintf("%s/freeBusy", c.baseURL)

	reqBody := FreeBusyRequest{
		TimeMin: start,
		TimeMax: end,
		Items:   []FreeBusyCalendar{{ID: c.calendarID}},
	}

	var resp FreeBusyResponse
	if err := c.do(ctx, http.MethodPost, endpoint, &reqBody, &resp); err != nil {
		return nil, err
	}

	busy := resp.Calendars[c.calendarID].Busy
	c.log.Info("Retrieved %d busy periods from Google Calendar", len(busy))
	return busy, nil
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

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNoContent, http.StatusGone:
		// 204 для успешного удаления, 410 для уже удаленного события
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	case http.StatusConflict:
		return ErrConflict
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
