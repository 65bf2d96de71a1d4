package optimizer

import (
	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// campus builds an in-person section meeting at the given days/time.
func campus(code, location, daysTime string) *model.Section {
	meeting, status := ParseMeeting(daysTime)
	return &model.Section{
		CourseCode:    code,
		SectionID:     "001N",
		Instructor:    "Staff",
		DaysTime:      daysTime,
		Location:      location,
		Delivery:      "In-Person",
		Mode:          model.DeliveryInPerson,
		Meeting:       meeting,
		MeetingStatus: status,
	}
}

// online builds an online-asynchronous section with no fixed meeting.
func online(code string) *model.Section {
	return &model.Section{
		CourseCode:    code,
		SectionID:     "N01",
		Instructor:    "Staff",
		DaysTime:      "Online",
		Location:      "NOVA Online",
		Delivery:      "Online Asynchronous",
		Mode:          model.DeliveryOnlineAsync,
		MeetingStatus: model.MeetingOnline,
	}
}

// defaultScorer mirrors the production rubric and campus table.
func defaultScorer() Scorer {
	return Scorer{
		Rubric: Rubric{
			EligibilityBonus: 200,
			ConflictPenalty:  500,
			AsyncBonus:       5,
		},
		Campuses: map[string]int{
			"Manassas":   100,
			"Woodbridge": 50,
			"Annandale":  30,
		},
	}
}
