package retell

// Agent модель агента Retell
type Agent struct {
	AgentID       string `json:"agent_id,omitempty"`
	AgentName     string `json:"agent_name"`
	VoiceID       string `json:"voice_id,omitempty"`
	LLMWebsocketURL string `json:"llm_websocket_url,omitempty"`
}

// CallRequest запрос на исходящий звонок
type CallRequest struct {
	FromNumber string `json:"from_number"`
	ToNumber   string `json:"to_number"`
	AgentID    string `json:"override_agent_id,omitempty"`
}

// Call модель звонка Retell
type Call struct {
	CallID         string `json:"call_id"`
	AgentID        string `json:"agent_id"`
	CallStatus     string `json:"call_status"`
	Direction      string `json:"direction,omitempty"`
	Transcript     string `json:"transcript,omitempty"`
	StartTimestamp int64  `json:"start_timestamp,omitempty"` // unix millis
	EndTimestamp   int64  `json:"end_timestamp,omitempty"`
	DisconnectionReason string `json:"disconnection_reason,omitempty"`
}

// ErrorResponse модель ошибки Retell API
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}
