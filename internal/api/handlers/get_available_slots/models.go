package get_available_slots

import (
	uc "github.com/callassist/CallAssist-BookingService/internal/usecase/get_available_slots"
	"github.com/callassist/CallAssist-BookingService/pkg/types"
)

// SlotResponse один слот в HTTP ответе
type SlotResponse struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Available bool             `json:"available"`
}

// Response HTTP response model
type Response struct {
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *uc.Response, dateFormat string) *Response {
	out := &Response{
		Date:            resp.Date.Format(dateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Available: slot.Available,
		})
	}

	return out
}
