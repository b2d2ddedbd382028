package calcom

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

const defaultBaseURL = "https://api.cal.com/v1"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Cal.com API v1
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Cal.com
func NewClient(apiKey, baseURL string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEventTypes получает список типов событий
func (c *Client) GetEventTypes(ctx context.Context) ([]EventType, error) {
	endpoint := fmt.Sprintf("%s/event-types?apiKey=%s", c.baseURL, url.QueryEscape(c.apiKey))

	var resp EventTypesResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return resp.EventTypes, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, booking *BookingRequest) (*Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings?apiKey=%s", c.baseURL, url.QueryEscape(c.apiKey))

	var created Booking
	if err := c.do(ctx, http.MethodPost, endpoint, booking, &created); err != nil {
		return nil, err
	}

	c.log.Info("Created Cal.com booking id=%d uid=%s", created.ID, created.UID)
	return &created, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings/%s?apiKey=%s", c.baseURL, url.PathEscape(bookingID), url.QueryEscape(c.apiKey))

	var booking Booking
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// GetBookingsBetween получает бронирования за период [from, to)
func (c *Client) GetBookingsBetween(ctx context.Context, from, to time.Time) ([]Booking, error) {
	endpoint := fmt.Sprintf("%s/bookings?apiKey=%s&afterStart=%s&beforeEnd=%s",
		c.baseURL,
		url.QueryEscape(c.apiKey),
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)),
	)

	var resp BookingsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	c.log.Info("Retrieved %d Cal.com bookings for period %s - %s",
		len(resp.Bookings), from.Format(time.RFC3339), to.Format(time.RFC3339))
	return resp.Bookings, nil
}

// CancelBooking отменяет бронирование с указанием причины
func (c *Client) CancelBooking(ctx context.Context, bookingID, reason string) error {
	endpoint := fmt.Sprintf("%s/bookings/%s/cancel?apiKey=%s&cancellationReason=%s",
		c.baseURL, url.PathEscape(bookingID), url.QueryEscape(c.apiKey), url.QueryEscape(reason))

	if err := c.do(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return err
	}

	c.log.Info("Cancelled Cal.com booking id=%s", bookingID)
	return nil
}

// RescheduleBooking переносит бронирование на новое время
func (c *Client) RescheduleBooking(ctx context.Context, bookingID string, newStart, newEnd time.Time) error {
	endpoint := fmt.Sprintf("%s/bookings/%s?apiKey=%s", c.baseURL, url.PathEscape(bookingID), url.QueryEscape(c.apiKey))

	payload := map[string]string{
		"startTime": newStart.UTC().Format(time.RFC3339),
		"endTime":   newEnd.UTC().Format(time.RFC3339),
	}

	if err := c.do(ctx, http.MethodPatch, endpoint, payload, nil); err != nil {
		return err
	}

	c.log.Info("Rescheduled Cal.com booking id=%s to %s", bookingID, newStart.Format(time.RFC3339))
	return nil
}

// do выполняет HTTP запрос с обработкой статус-кодов
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
		return ErrBookingNotFound
	case http.StatusConflict:
		return ErrSlotTaken
	case http.StatusBadRequest:
		// Cal.com отвечает 400 "no_available_users_found" на занятый слот
		var errResp ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message == "no_available_users_found" {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, string(raw))
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
