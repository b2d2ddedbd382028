package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.twilio.com/2010-04-01"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Twilio REST API
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Twilio
func NewClient(accountSID, authToken, fromNumber string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// MakeCall инициирует исходящий звонок. twimlURL указывает на инструкции
// обработки звонка, которые Twilio запросит после установки соединения.
func (c *Client) MakeCall(ctx context.Context, toNumber, twimlURL string) (*Call, error) {
	form := url.Values{}
	form.Set("To", toNumber)
	form.Set("From", c.fromNumber)
	form.Set("Url", twimlURL)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", c.baseURL, url.PathEscape(c.accountSID))

	var call Call
	if err := c.do(ctx, http.MethodPost, endpoint, form, &call); err != nil {
		return nil, err
	}

	c.log.Info("Initiated Twilio call sid=%s to %s", call.SID, toNumber)
	return &call, nil
}

// GetCall получает детали звонка по SID
func (c *Client) GetCall(ctx context.Context, callSID string) (*Call, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls/%s.json", c.baseURL, url.PathEscape(c.accountSID), url.PathEscape(callSID))

	var call Call
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &call); err != nil {
		return nil, err
	}

	return &call, nil
}

// SendSMS отправляет SMS сообщение
func (c *Client) SendSMS(ctx context.Context, toNumber, body string) (*Message, error) {
	form := url.Values{}
	form.Set("To", toNumber)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, url.PathEscape(c.accountSID))

	var msg Message
	if err := c.do(ctx, http.MethodPost, endpoint, form, &msg); err != nil {
		return nil, err
	}

	c.log.Info("Sent SMS sid=%s to %s", msg.SID, toNumber)
	return &msg, nil
}

// do выполняет HTTP запрос с basic auth и обработкой статус-кодов.
// Twilio принимает тело запроса в application/x-www-form-urlencoded.
func (c *Client) do(ctx context.Context, method, endpoint string, form url.Values, out interface{}) error {
	var reader io.Reader
	if form != nil {
		reader = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.accountSID, c.authToken)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

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
