package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkarim/schedule-optimizer/pkg/model"
)

func row(course, classNumber, daysTime, delivery string) *model.SectionRow {
	return &model.SectionRow{
		CourseCode:    course,
		ClassNumber:   classNumber,
		SectionNumber: "001",
		Instructor:    "Staff",
		DaysTime:      daysTime,
		Location:      "Manassas",
		Delivery:      delivery,
		StartDate:     "01/12/2026",
		EndDate:       "05/08/2026",
	}
}

func TestBuildCatalogFiltersAndOrders(t *testing.T) {
	rows := []*model.SectionRow{
		row("ITN 101", "10001", "MW 10:00A - 11:20A", "In-Person"),
		row("MTH 263", "10002", "TR 10:00A - 11:20A", "In-Person"), // not required
		row("ITN 101", "10003", "Online", "Online Asynchronous"),
		row("ITN 170", "10004", "T 06:00P - 08:40P", "Hybrid"),
	}

	catalog, report := BuildCatalog(rows, []string{"ITN 101", "ITN 170"})

	require.Len(t, catalog.Sections("ITN 101"), 2)
	assert.Equal(t, "10001", catalog.Sections("ITN 101")[0].RegistrationNumber)
	assert.Equal(t, "10003", catalog.Sections("ITN 101")[1].RegistrationNumber)
	assert.Empty(t, catalog.Sections("MTH 263"))

	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, 3, report.Kept)
	assert.Equal(t, 0, report.Unparsed)
	require.Len(t, report.Courses, 2)
	assert.Equal(t, CourseSummary{Code: "ITN 101", Sections: 2, InPerson: 1, Online: 1}, report.Courses[0])
	assert.Equal(t, CourseSummary{Code: "ITN 170", Sections: 1, InPerson: 1, Online: 0}, report.Courses[1])
}

func TestBuildCatalogKeepsDuplicates(t *testing.T) {
	dup := row("ITN 101", "10001", "MW 10:00A - 11:20A", "In-Person")
	catalog, report := BuildCatalog([]*model.SectionRow{dup, dup}, []string{"ITN 101"})
	assert.Len(t, catalog.Sections("ITN 101"), 2)
	assert.Equal(t, 2, report.Kept)
}

func TestBuildCatalogCountsUnparsed(t *testing.T) {
	rows := []*model.SectionRow{
		row("ITN 101", "10001", "MW 13:00A - 14:00A", "In-Person"),
		row("ITN 101", "10002", "Online", "Online Asynchronous"),
	}
	catalog, report := BuildCatalog(rows, []string{"ITN 101"})

	assert.Equal(t, 1, report.Unparsed)
	secs := catalog.Sections("ITN 101")
	require.Len(t, secs, 2)
	// Unparsed rows are still loaded, with no fixed meeting.
	assert.Nil(t, secs[0].Meeting)
	assert.Equal(t, model.MeetingUnparsed, secs[0].MeetingStatus)
	assert.Equal(t, model.MeetingOnline, secs[1].MeetingStatus)
}

func TestBuildCatalogDeliveryModes(t *testing.T) {
	rows := []*model.SectionRow{
		row("ITN 101", "1", "MW 10:00A - 11:20A", "In-Person"),
		row("ITN 101", "2", "T 10:00A - 11:20A", "Hybrid"),
		row("ITN 101", "3", "Online", "Online Asynchronous"),
		row("ITN 101", "4", "W 07:00P - 09:40P", "Online Synchronous"),
		row("ITN 101", "5", "Online", "Independent Study"),
	}
	catalog, _ := BuildCatalog(rows, []string{"ITN 101"})
	secs := catalog.Sections("ITN 101")
	require.Len(t, secs, 5)

	assert.Equal(t, model.DeliveryInPerson, secs[0].Mode)
	assert.Equal(t, model.DeliveryHybrid, secs[1].Mode)
	assert.Equal(t, model.DeliveryOnlineAsync, secs[2].Mode)
	assert.Equal(t, model.DeliveryOnlineSync, secs[3].Mode)
	assert.Equal(t, model.DeliveryOther, secs[4].Mode)
	// The raw code passes through for display.
	assert.Equal(t, "Independent Study", secs[4].Delivery)

	assert.True(t, secs[0].QualifiesInPerson())
	assert.True(t, secs[1].QualifiesInPerson())
	assert.False(t, secs[2].QualifiesInPerson())
	assert.False(t, secs[3].QualifiesInPerson())
	assert.False(t, secs[4].QualifiesInPerson())
}
