package availability

import (
	"fmt"
	"time"

	"github.com/callassist/CallAssist-BookingService/internal/domain"
)

// Window задаёт рамки генерации слотов на день: рабочие часы и шаг сетки.
// Кандидаты могут пересекаться между собой, если шаг меньше длительности
// услуги (60-минутная услуга с шагом 30 минут) — это сделано намеренно,
// чтобы предложить звонящему больше вариантов времени начала; в итоге
// будет выбран только один слот.
type Window struct {
	WorkStartHour int // 0-23
	WorkEndHour   int // 0-23, строго больше WorkStartHour
	StepMinutes   int // шаг сетки, по умолчанию 30
}

// DefaultWindow возвращает окно по умолчанию: 9:00-17:00 с шагом 30 минут
func DefaultWindow() Window {
	return Window{
		WorkStartHour: domain.DefaultWorkStartHour,
		WorkEndHour:   domain.DefaultWorkEndHour,
		StepMinutes:   domain.DefaultStepMinutes,
	}
}

// Validate проверяет параметры окна
func (w Window) Validate() error {
	if w.WorkStartHour < 0 || w.WorkStartHour > 23 {
		return fmt.Errorf("%w: workStartHour must be within 0-23", ErrInvalidWindow)
	}
	if w.WorkEndHour < 0 || w.WorkEndHour > 23 {
		return fmt.Errorf("%w: workEndHour must be within 0-23", ErrInvalidWindow)
	}
	if w.WorkEndHour <= w.WorkStartHour {
		return fmt.Errorf("%w: workEndHour must be after workStartHour", ErrInvalidWindow)
	}
	if w.StepMinutes <= 0 {
		return fmt.Errorf("%w: stepMinutes must be positive", ErrInvalidWindow)
	}
	return nil
}

// GenerateSlots генерирует все кандидатные интервалы указанной длительности
// на день day в пределах окна w. Курсор стартует от day@workStart и двигается
// с шагом w.StepMinutes, пока конец кандидата не выходит за day@workEnd.
//
// Результат пересчитывается заново при каждом вызове, скрытого состояния нет.
// Окно, слишком короткое даже для одного слота, даёт пустой список, не ошибку.
func GenerateSlots(day time.Time, durationMinutes int, w Window) ([]domain.Interval, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidWindow)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	workStart := time.Date(day.Year(), day.Month(), day.Day(), w.WorkStartHour, 0, 0, 0, day.Location())
	workEnd := time.Date(day.Year(), day.Month(), day.Day(), w.WorkEndHour, 0, 0, 0, day.Location())

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(w.StepMinutes) * time.Minute

	slots := make([]domain.Interval, 0)
	for cursor := workStart; !cursor.Add(duration).After(workEnd); cursor = cursor.Add(step) {
		slots = append(slots, domain.Interval{Start: cursor, End: cursor.Add(duration)})
	}

	return slots, nil
}

// AvailableSlots прогоняет все кандидаты через набор занятых интервалов и
// возвращает ПОЛНЫЙ список слотов в хронологическом порядке — и свободные,
// и занятые, с выставленным флагом Available. Порядок генератора сохраняется.
func AvailableSlots(day time.Time, durationMinutes int, busy domain.BusySet, w Window) ([]domain.Slot, error) {
	candidates, err := GenerateSlots(day, durationMinutes, w)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, len(candidates))
	for i, candidate := range candidates {
		slots[i] = domain.Slot{
			Interval:  candidate,
			Available: !busy.ConflictsWith(candidate),
		}
	}

	return slots, nil
}

// IsFree отвечает на точечный вопрос "свободен ли интервал [start, end)?"
func IsFree(candidate domain.Interval, busy domain.BusySet) bool {
	return !busy.ConflictsWith(candidate)
}
