package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString время суток в формате "HH:MM". Используется в HTTP моделях,
// чтобы не тащить полноценный time.Time там, где важны только часы и минуты.
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString валидирует и создает TimeString из строки
func NewTimeStringFromString(raw string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, raw); err != nil {
		return "", fmt.Errorf("types: invalid time %q, expected HH:MM", raw)
	}

	return TimeString(raw), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// ToTime возвращает время суток, привязанное к дате day
func (t TimeString) ToTime(day time.Time) (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time %q, expected HH:MM", string(t))
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// UnmarshalJSON валидирует формат при разборе JSON
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
