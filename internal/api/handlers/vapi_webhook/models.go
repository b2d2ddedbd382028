package vapi_webhook

import (
	"encoding/json"
	"time"
)

// Типы сообщений Vapi, которые обрабатывает вебхук
const (
	messageStatusUpdate    = "status-update"
	messageEndOfCallReport = "end-of-call-report"
	messageToolCalls       = "tool-calls"
)

// WebhookEnvelope конверт вебхука Vapi
type WebhookEnvelope struct {
	Message WebhookMessage `json:"message"`
}

// WebhookMessage полезная нагрузка вебхука
type WebhookMessage struct {
	Type       string     `json:"type"`
	Status     string     `json:"status,omitempty"`
	Call       *CallInfo  `json:"call,omitempty"`
	Transcript string     `json:"transcript,omitempty"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	ToolCalls  []ToolCall `json:"toolCallList,omitempty"`
}

// CallInfo сведения о звонке в вебхуке
type CallInfo struct {
	ID       string        `json:"id"`
	Customer *CustomerInfo `json:"customer,omitempty"`
}

// CustomerInfo сведения о звонящем
type CustomerInfo struct {
	Number string `json:"number"`
}

// ToolCall вызов функции ассистентом
type ToolCall struct {
	ID       string           `json:"id"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction имя и аргументы функции
type ToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult результат одного вызова функции
type ToolCallResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
}

// ToolCallResponse ответ на сообщение tool-calls
type ToolCallResponse struct {
	Results []ToolCallResult `json:"results"`
}
