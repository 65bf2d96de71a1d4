package model

// DeliveryMode is the normalized delivery method of a section.
type DeliveryMode int

const (
	DeliveryOther DeliveryMode = iota
	DeliveryInPerson
	DeliveryHybrid
	DeliveryOnlineAsync
	DeliveryOnlineSync
)

// ParseDeliveryMode maps the catalog's delivery method strings onto the
// DeliveryMode enumeration. Unrecognized codes pass through as DeliveryOther.
func ParseDeliveryMode(code string) DeliveryMode {
	switch code {
	case "In-Person":
		return DeliveryInPerson
	case "Hybrid":
		return DeliveryHybrid
	case "Online Asynchronous":
		return DeliveryOnlineAsync
	case "Online Synchronous":
		return DeliveryOnlineSync
	}
	return DeliveryOther
}

func (m DeliveryMode) String() string {
	switch m {
	case DeliveryInPerson:
		return "In-Person"
	case DeliveryHybrid:
		return "Hybrid"
	case DeliveryOnlineAsync:
		return "Online Asynchronous"
	case DeliveryOnlineSync:
		return "Online Synchronous"
	}
	return "Other"
}

// SectionRow mirrors one row of the scraped schedule CSV.
type SectionRow struct {
	CourseCode    string `csv:"Course Code"`
	ClassNumber   string `csv:"Class Number"`
	SectionNumber string `csv:"Section Number"`
	Instructor    string `csv:"Instructor"`
	DaysTime      string `csv:"Days/Time"`
	Location      string `csv:"Location"`
	Delivery      string `csv:"Delivery Method"`
	StartDate     string `csv:"Start Date"`
	EndDate       string `csv:"End Date"`
}

// Section is one offered, independently schedulable instance of a course.
// Sections are built once during catalog load and never mutated afterwards.
type Section struct {
	CourseCode         string
	SectionID          string
	RegistrationNumber string
	Instructor         string
	DaysTime           string // raw display string from the catalog
	Location           string
	Delivery           string // raw delivery method, kept for display
	Mode               DeliveryMode
	Meeting            *MeetingPattern // nil when there is no fixed meeting
	MeetingStatus      MeetingStatus
	TermStart          string
	TermEnd            string
}

// QualifiesInPerson reports whether the section can satisfy the mandatory
// in-person presence requirement.
func (s *Section) QualifiesInPerson() bool {
	return s.Mode == DeliveryInPerson || s.Mode == DeliveryHybrid
}

// Catalog maps a course code to its offered sections, in catalog order.
type Catalog map[string][]*Section

// Sections returns the sections offered for the given course code.
func (c Catalog) Sections(courseCode string) []*Section {
	return c[courseCode]
}
