package optimizer

import (
	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// CourseSummary describes the sections loaded for one required course.
type CourseSummary struct {
	Code     string
	Sections int
	InPerson int
	Online   int
}

// LoadReport summarizes a catalog build for auditing: how many rows were
// seen, how many were kept, how many Days/Time fields failed to parse, and
// a per-course breakdown.
type LoadReport struct {
	Rows     int
	Kept     int
	Unparsed int
	Courses  []CourseSummary
}

// BuildCatalog turns raw section rows into a catalog, keeping only rows
// whose course code appears in the required set. Rows are kept in input
// order per course; duplicate rows produce duplicate sections. Rows whose
// Days/Time field matches the scheduled shape but fails to parse are still
// loaded (treated as having no fixed meeting) and counted in the report.
func BuildCatalog(rows []*model.SectionRow, required []string) (model.Catalog, LoadReport) {
	wanted := make(map[string]bool, len(required))
	for _, code := range required {
		wanted[code] = true
	}

	catalog := make(model.Catalog, len(required))
	report := LoadReport{Rows: len(rows)}
	for _, row := range rows {
		if !wanted[row.CourseCode] {
			continue
		}
		meeting, status := ParseMeeting(row.DaysTime)
		if status == model.MeetingUnparsed {
			report.Unparsed++
		}
		catalog[row.CourseCode] = append(catalog[row.CourseCode], &model.Section{
			CourseCode:         row.CourseCode,
			SectionID:          row.SectionNumber,
			RegistrationNumber: row.ClassNumber,
			Instructor:         row.Instructor,
			DaysTime:           row.DaysTime,
			Location:           row.Location,
			Delivery:           row.Delivery,
			Mode:               model.ParseDeliveryMode(row.Delivery),
			Meeting:            meeting,
			MeetingStatus:      status,
			TermStart:          row.StartDate,
			TermEnd:            row.EndDate,
		})
		report.Kept++
	}

	report.Courses = make([]CourseSummary, 0, len(required))
	for _, code := range required {
		summary := CourseSummary{Code: code}
		for _, sec := range catalog[code] {
			summary.Sections++
			if sec.QualifiesInPerson() {
				summary.InPerson++
			} else {
				summary.Online++
			}
		}
		report.Courses = append(report.Courses, summary)
	}
	return catalog, report
}
