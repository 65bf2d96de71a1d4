package model

import "strings"

// DaySet is a bitmask over the days of the week.
type DaySet uint8

const (
	Monday DaySet = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = []struct {
	day  DaySet
	name string
}{
	{Monday, "Mon"},
	{Tuesday, "Tue"},
	{Wednesday, "Wed"},
	{Thursday, "Thu"},
	{Friday, "Fri"},
	{Saturday, "Sat"},
	{Sunday, "Sun"},
}

// Has reports whether d contains the given day.
func (d DaySet) Has(day DaySet) bool {
	return d&day != 0
}

// Intersects reports whether the two sets share at least one day.
func (d DaySet) Intersects(other DaySet) bool {
	return d&other != 0
}

func (d DaySet) String() string {
	var parts []string
	for _, e := range dayNames {
		if d.Has(e.day) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, ",")
}

// MeetingPattern is the fixed weekly meeting time of a section: the days it
// meets and the minute interval within each day. StartMin and EndMin are
// minutes since midnight with StartMin < EndMin.
type MeetingPattern struct {
	Days     DaySet
	StartMin int
	EndMin   int
}

// Overlaps reports whether the two patterns collide: they share a day and
// their minute intervals overlap. Intervals that only touch at a boundary
// (one ends exactly when the other starts) do not overlap.
func (m MeetingPattern) Overlaps(other MeetingPattern) bool {
	if !m.Days.Intersects(other.Days) {
		return false
	}
	return m.StartMin < other.EndMin && other.StartMin < m.EndMin
}

// MeetingStatus distinguishes why a section does or does not carry a
// MeetingPattern. Online and Unparsed both mean "no fixed meeting time" for
// conflict purposes, but Unparsed marks a row whose Days/Time field looked
// scheduled and failed to parse, which is a data-quality signal rather than
// an online section.
type MeetingStatus int

const (
	MeetingScheduled MeetingStatus = iota
	MeetingOnline
	MeetingUnparsed
)

func (s MeetingStatus) String() string {
	switch s {
	case MeetingScheduled:
		return "scheduled"
	case MeetingOnline:
		return "online"
	case MeetingUnparsed:
		return "unparsed"
	}
	return "unknown"
}
