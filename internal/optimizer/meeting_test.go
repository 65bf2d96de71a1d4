package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkarim/schedule-optimizer/pkg/model"
)

func TestParseMeetingScheduled(t *testing.T) {
	cases := []struct {
		raw   string
		days  model.DaySet
		start int
		end   int
	}{
		{"MW 09:35A - 10:55A", model.Monday | model.Wednesday, 575, 655},
		{"TR 11:10A - 12:25P", model.Tuesday | model.Thursday, 670, 745},
		{"F 01:00P - 03:40P", model.Friday, 780, 940},
		{"SU 10:00A - 11:00A", model.Saturday | model.Sunday, 600, 660},
		{"M 12:00A - 12:00P", model.Monday, 0, 720},
		{"MTWRF 08:00A - 08:50A", model.Monday | model.Tuesday | model.Wednesday | model.Thursday | model.Friday, 480, 530},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			meeting, status := ParseMeeting(tc.raw)
			require.Equal(t, model.MeetingScheduled, status)
			require.NotNil(t, meeting)
			assert.Equal(t, tc.days, meeting.Days)
			assert.Equal(t, tc.start, meeting.StartMin)
			assert.Equal(t, tc.end, meeting.EndMin)
		})
	}
}

func TestParseMeetingOnline(t *testing.T) {
	for _, raw := range []string{"", "Online", "TBA", "See department", "09:30A - 10:45A"} {
		t.Run(raw, func(t *testing.T) {
			meeting, status := ParseMeeting(raw)
			assert.Nil(t, meeting)
			assert.Equal(t, model.MeetingOnline, status)
		})
	}
}

func TestParseMeetingUnparsed(t *testing.T) {
	cases := []string{
		"MW 13:10A - 14:25A", // hour outside the 12-hour clock
		"MW 09:75A - 10:55A", // minute out of range
		"MW 00:30A - 01:30A", // hour zero does not exist on a 12-hour clock
		"MW 10:00A - 09:00A", // ends before it starts
		"MW 10:00A - 10:00A", // empty interval
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			meeting, status := ParseMeeting(raw)
			assert.Nil(t, meeting)
			assert.Equal(t, model.MeetingUnparsed, status)
		})
	}
}

func TestClockToMinutesNoonAndMidnight(t *testing.T) {
	min, ok := clockToMinutes("12:00A")
	require.True(t, ok)
	assert.Equal(t, 0, min)

	min, ok = clockToMinutes("12:00P")
	require.True(t, ok)
	assert.Equal(t, 720, min)

	min, ok = clockToMinutes("12:30A")
	require.True(t, ok)
	assert.Equal(t, 30, min)
}

func TestLetterRunDisambiguation(t *testing.T) {
	// T alone is Tuesday, R alone is Thursday. TR must never collapse into
	// a single day.
	meeting, status := ParseMeeting("T 10:00A - 11:00A")
	require.Equal(t, model.MeetingScheduled, status)
	assert.Equal(t, model.Tuesday, meeting.Days)

	meeting, status = ParseMeeting("R 10:00A - 11:00A")
	require.Equal(t, model.MeetingScheduled, status)
	assert.Equal(t, model.Thursday, meeting.Days)

	tuesdayOnly := model.MeetingPattern{Days: model.Tuesday, StartMin: 600, EndMin: 660}
	thursdayOnly := model.MeetingPattern{Days: model.Thursday, StartMin: 600, EndMin: 660}
	assert.False(t, tuesdayOnly.Overlaps(thursdayOnly))
}
