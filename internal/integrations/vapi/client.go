package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.vapi.ai"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Vapi API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Vapi
func NewClient(apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateAssistant создает ассистента
func (c *Client) CreateAssistant(ctx context.Context, assistant *Assistant) (*Assistant, error) {
	var created Assistant
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/assistant", assistant, &created); err != nil {
		return nil, err
	}

	c.log.Info("Created Vapi assistant id=%s", created.ID)
	return &created, nil
}

// GetAssistant получает ассистента по ID
func (c *Client) GetAssistant(ctx context.Context, assistantID string) (*Assistant, error) {
	endpoint := fmt.Sprintf("%s/assistant/%s", c.baseURL, url.PathEscape(assistantID))

	var assistant Assistant
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &assistant); err != nil {
		if errors.Is(err, ErrCallNotFound) {
			return nil, ErrAssistantNotFound
		}
		return nil, err
	}

	return &assistant, nil
}

// MakeCall инициирует исходящий звонок
func (c *Client) MakeCall(ctx context.Context, call *CallRequest) (*Call, error) {
	var created Call
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/call", call, &created); err != nil {
		return nil, err
	}

	c.log.Info("Initiated Vapi call id=%s to %s", created.ID, call.Customer.Number)
	return &created, nil
}

// GetCall получает детали звонка по ID
func (c *Client) GetCall(ctx context.Context, callID string) (*Call, error) {
	endpoint := fmt.Sprintf("%s/call/%s", c.baseURL, url.PathEscape(callID))

	var call Call
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &call); err != nil {
		return nil, err
	}

	return &call, nil
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
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrCallNotFound
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
