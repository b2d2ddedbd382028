package availability

import "errors"

var (
	// ErrInvalidWindow возвращается при некорректных параметрах окна генерации:
	// конец рабочего дня раньше начала, неположительная длительность или шаг
	ErrInvalidWindow = errors.New("availability: invalid generation window")
)
