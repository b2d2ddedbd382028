package get_available_slots

import (
	"time"

	"github.com/callassist/CallAssist-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date            time.Time // День, на который запрашиваются слоты (без времени)
	DurationMinutes int       // Длительность услуги; 0 означает длительность по умолчанию
}

// SlotInfo один кандидатный слот
type SlotInfo struct {
	StartTime types.TimeString // Время начала слота, например "09:30"
	EndTime   types.TimeString // Время окончания слота
	Available bool             // Свободен ли слот
}

// Response модель ответа со слотами на день
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []SlotInfo
}
