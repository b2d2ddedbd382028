package retell_webhook

// События Retell, которые обрабатывает вебхук
const (
	eventCallStarted = "call_started"
	eventCallEnded   = "call_ended"
)

// WebhookEnvelope конверт вебхука Retell
type WebhookEnvelope struct {
	Event string   `json:"event"`
	Call  CallInfo `json:"call"`
}

// CallInfo сведения о звонке в вебхуке
type CallInfo struct {
	CallID         string `json:"call_id"`
	Direction      string `json:"direction"`
	FromNumber     string `json:"from_number"`
	ToNumber       string `json:"to_number"`
	CallStatus     string `json:"call_status"`
	Transcript     string `json:"transcript,omitempty"`
	StartTimestamp int64  `json:"start_timestamp,omitempty"` // unix millis
	EndTimestamp   int64  `json:"end_timestamp,omitempty"`
	DisconnectionReason string `json:"disconnection_reason,omitempty"`
}
