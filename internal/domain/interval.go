package domain

import (
	"fmt"
	"time"
)

// Interval represents a half-open time range [Start, End).
// Immutable once constructed via NewInterval.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an interval, enforcing End > Start
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps returns true if the two half-open intervals share at least one instant.
// An interval ending exactly when another starts does NOT overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// ContainsPoint returns true if t lies within [Start, End)
func (i Interval) ContainsPoint(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// String returns a human-readable representation, used in error messages
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}
