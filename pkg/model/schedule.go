package model

// CandidateSchedule is one section per required course, index-aligned with
// the required course list, plus the index of the slot nominated to satisfy
// the in-person requirement. Candidates are transient: they exist only
// between enumeration and scoring.
type CandidateSchedule struct {
	Sections        []*Section
	QualifyingIndex int
}

// QualifyingSection returns the nominated section.
func (c CandidateSchedule) QualifyingSection() *Section {
	return c.Sections[c.QualifyingIndex]
}

// ScoredSchedule is a candidate that passed scoring, the externally visible
// result of an optimization run. Never mutated after creation.
type ScoredSchedule struct {
	Score           int
	Sections        []*Section
	QualifyingIndex int
}

// QualifyingCourse returns the course code of the nominated in-person slot.
func (s ScoredSchedule) QualifyingCourse() string {
	return s.Sections[s.QualifyingIndex].CourseCode
}

// ScheduleJSON is the serialized form of one ranked schedule.
type ScheduleJSON struct {
	Score            int         `json:"score"`
	QualifyingCourse string      `json:"qualifying_course"`
	Classes          []ClassJSON `json:"classes"`
}

// ClassJSON is the serialized form of one slot within a ranked schedule.
type ClassJSON struct {
	Course      string `json:"course"`
	ClassNumber string `json:"class_number"`
	Section     string `json:"section"`
	Instructor  string `json:"instructor"`
	DaysTime    string `json:"days_time"`
	Location    string `json:"location"`
	Delivery    string `json:"delivery"`
	Qualifying  bool   `json:"qualifying"`
}

// Export converts a ScoredSchedule into its serialized form.
func (s ScoredSchedule) Export() ScheduleJSON {
	out := ScheduleJSON{
		Score:            s.Score,
		QualifyingCourse: s.QualifyingCourse(),
		Classes:          make([]ClassJSON, len(s.Sections)),
	}
	for i, sec := range s.Sections {
		out.Classes[i] = ClassJSON{
			Course:      sec.CourseCode,
			ClassNumber: sec.RegistrationNumber,
			Section:     sec.SectionID,
			Instructor:  sec.Instructor,
			DaysTime:    sec.DaysTime,
			Location:    sec.Location,
			Delivery:    sec.Delivery,
			Qualifying:  i == s.QualifyingIndex,
		}
	}
	return out
}
