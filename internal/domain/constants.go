package domain

// Default availability window values
const (
	DefaultWorkStartHour   = 9
	DefaultWorkEndHour     = 17
	DefaultStepMinutes     = 30
	DefaultDurationMinutes = 60
)

// Business validation constants
const (
	MinPhoneDigits     = 10
	MaxNotesLength     = 500
	MaxDurationMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список статусов, из которых запись не может перейти дальше
var TerminalStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}

// ActiveStatuses список статусов, при которых запись занимает слот в календаре
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}
