package optimizer

import (
	"regexp"
	"strconv"

	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// daysTimePattern matches the catalog's scheduled Days/Time format, e.g.
// "MW 09:35A - 10:55A". Anything else (Online, TBA, empty) is not scheduled.
var daysTimePattern = regexp.MustCompile(`^([MTWRFSU]+)\s+(\d{1,2}:\d{2}[AP])\s*-\s*(\d{1,2}:\d{2}[AP])`)

// Catalog day letters. R is Thursday and U is Sunday; the full letter run is
// matched before mapping so a stray T can never be confused with Thursday.
var letterDays = map[byte]model.DaySet{
	'M': model.Monday,
	'T': model.Tuesday,
	'W': model.Wednesday,
	'R': model.Thursday,
	'F': model.Friday,
	'S': model.Saturday,
	'U': model.Sunday,
}

// ParseMeeting converts a raw Days/Time string into a meeting pattern.
// Strings that do not look scheduled at all yield (nil, MeetingOnline).
// Strings that match the scheduled shape but carry an invalid clock time
// yield (nil, MeetingUnparsed) so loaders can count them as data defects.
func ParseMeeting(raw string) (*model.MeetingPattern, model.MeetingStatus) {
	m := daysTimePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, model.MeetingOnline
	}
	start, ok := clockToMinutes(m[2])
	if !ok {
		return nil, model.MeetingUnparsed
	}
	end, ok := clockToMinutes(m[3])
	if !ok {
		return nil, model.MeetingUnparsed
	}
	if start >= end {
		return nil, model.MeetingUnparsed
	}
	var days model.DaySet
	for i := 0; i < len(m[1]); i++ {
		days |= letterDays[m[1][i]]
	}
	return &model.MeetingPattern{Days: days, StartMin: start, EndMin: end}, model.MeetingScheduled
}

// clockToMinutes converts a 12-hour clock time like "11:10A" or "02:30P" to
// minutes since midnight. 12:00A maps to 0 and 12:00P maps to 720.
func clockToMinutes(clock string) (int, bool) {
	sep := -1
	for i := 0; i < len(clock); i++ {
		if clock[i] == ':' {
			sep = i
			break
		}
	}
	if sep < 1 || len(clock) != sep+4 {
		return 0, false
	}
	hour, err := strconv.Atoi(clock[:sep])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, err := strconv.Atoi(clock[sep+1 : sep+3])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	if hour == 12 {
		hour = 0
	}
	if clock[sep+3] == 'P' {
		hour += 12
	}
	return hour*60 + minute, true
}
