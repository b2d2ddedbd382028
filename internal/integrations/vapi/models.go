package vapi

import "time"

// Assistant модель ассистента Vapi
type Assistant struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	FirstMessage string `json:"firstMessage,omitempty"`
	Model        *AssistantModel `json:"model,omitempty"`
	VoiceID      string `json:"voiceId,omitempty"`
}

// AssistantModel конфигурация LLM ассистента
type AssistantModel struct {
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	SystemMessage string `json:"systemPrompt,omitempty"`
}

// CallRequest запрос на исходящий звонок
type CallRequest struct {
	AssistantID   string        `json:"assistantId"`
	PhoneNumberID string        `json:"phoneNumberId,omitempty"`
	Customer      CallRecipient `json:"customer"`
}

// CallRecipient получатель звонка
type CallRecipient struct {
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
}

// Call модель звонка Vapi
type Call struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Type       string     `json:"type"` // inboundPhoneCall / outboundPhoneCall
	Transcript string     `json:"transcript,omitempty"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	EndedReason string    `json:"endedReason,omitempty"`
}

// ErrorResponse модель ошибки Vapi API
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
