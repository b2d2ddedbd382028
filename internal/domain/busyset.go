package domain

import "sort"

// BusySet is a collection of intervals already committed for one resource
// within one day (or window). Input is not required to be merged or even
// non-overlapping: vendor calendars routinely report duplicate busy entries.
type BusySet struct {
	intervals []Interval
}

// NewBusySet creates a busy set from the given intervals, ordered by start
func NewBusySet(intervals ...Interval) BusySet {
	s := BusySet{}
	for _, iv := range intervals {
		s.Add(iv)
	}
	return s
}

// Add inserts an interval keeping the set ordered by start time
func (s *BusySet) Add(iv Interval) {
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Start.After(iv.Start)
	})
	s.intervals = append(s.intervals, Interval{})
	copy(s.intervals[idx+1:], s.intervals[idx:])
	s.intervals[idx] = iv
}

// ConflictsWith returns true if ANY contained interval overlaps the candidate
func (s BusySet) ConflictsWith(candidate Interval) bool {
	for _, iv := range s.intervals {
		if iv.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Merge returns a new busy set with overlapping and adjacent intervals
// coalesced into a minimal sorted cover
func (s BusySet) Merge() BusySet {
	if len(s.intervals) == 0 {
		return BusySet{}
	}

	merged := make([]Interval, 0, len(s.intervals))
	current := s.intervals[0]

	for _, iv := range s.intervals[1:] {
		// Adjacent counts as mergeable: [10:00,11:00) + [11:00,12:00) -> [10:00,12:00)
		if !iv.Start.After(current.End) {
			if iv.End.After(current.End) {
				current.End = iv.End
			}
			continue
		}
		merged = append(merged, current)
		current = iv
	}
	merged = append(merged, current)

	return BusySet{intervals: merged}
}

// Intervals returns a copy of the contained intervals in start order
func (s BusySet) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Len returns the number of contained intervals
func (s BusySet) Len() int {
	return len(s.intervals)
}

// IsEmpty returns true if the set contains no intervals
func (s BusySet) IsEmpty() bool {
	return len(s.intervals) == 0
}
