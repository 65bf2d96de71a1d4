package csvio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/rkarim/schedule-optimizer/internal/optimizer"
	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// exportFile is the on-disk shape of a finished run.
type exportFile struct {
	RunID       string               `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Schedules   []model.ScheduleJSON `json:"schedules"`
}

// ExportSchedules writes the ranked schedules of a run to a JSON file.
func ExportSchedules(path string, result *optimizer.Result) error {
	out := exportFile{
		RunID:       result.RunID,
		GeneratedAt: time.Now().UTC(),
		Schedules:   make([]model.ScheduleJSON, len(result.Schedules)),
	}
	for i, s := range result.Schedules {
		out.Schedules[i] = s.Export()
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

var (
	headerColor = color.New(color.FgGreen, color.Bold)
	markerColor = color.New(color.FgYellow, color.Bold)
)

// PrintSchedules renders the best n schedules as terminal tables, marking
// the slot nominated for the in-person requirement.
func PrintSchedules(w io.Writer, result *optimizer.Result, n int) {
	if len(result.Schedules) == 0 {
		fmt.Fprintln(w, "No valid schedules found.")
		return
	}
	if n > len(result.Schedules) {
		n = len(result.Schedules)
	}
	for i := 0; i < n; i++ {
		s := result.Schedules[i]
		headerColor.Fprintf(w, "\nOption %d (score %d)\n", i+1, s.Score)
		fmt.Fprintf(w, "In-person course: %s\n", s.QualifyingCourse())

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"", "Course", "Section", "Delivery", "Days/Time", "Location"})
		for j, sec := range s.Sections {
			marker := ""
			if j == s.QualifyingIndex {
				marker = markerColor.Sprint("★")
			}
			table.Append([]string{
				marker,
				sec.CourseCode,
				sec.SectionID,
				sec.Delivery,
				sec.DaysTime,
				sec.Location,
			})
		}
		table.Render()
	}
	fmt.Fprintf(w, "\n%d valid schedules, mean score %.1f (min %d, max %d)\n",
		result.Valid, result.Stats.Mean, result.Stats.Min, result.Stats.Max)
}
