package domain

// Slot represents a candidate appointment window with an availability flag.
// Produced transiently by the availability resolver and consumed immediately;
// never persisted.
type Slot struct {
	Interval
	Available bool
}

// IsBookable returns true if the slot can still be offered to a caller
func (s *Slot) IsBookable() bool {
	return s.Available
}
