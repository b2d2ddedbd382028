package twilio

// Call модель звонка Twilio (подмножество полей API 2010-04-01)
type Call struct {
	SID       string `json:"sid"`
	Status    string `json:"status"`
	Direction string `json:"direction"`
	From      string `json:"from"`
	To        string `json:"to"`
	Duration  string `json:"duration,omitempty"` // секунды, строкой
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// Message модель SMS сообщения Twilio
type Message struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	From   string `json:"from"`
	To     string `json:"to"`
	Body   string `json:"body"`
}

// ErrorResponse модель ошибки Twilio API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
