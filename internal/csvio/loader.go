// Package csvio moves section data across the file boundary: it reads the
// scraped schedule CSV into the catalog and writes the ranked schedules out.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/rkarim/schedule-optimizer/internal/optimizer"
	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// LoadSectionRows reads and parses the schedule CSV at path.
func LoadSectionRows(path string) ([]*model.SectionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rows []*model.SectionRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// LoadCatalog reads the schedule CSV and builds the catalog for the given
// required courses, logging the per-course section summary and any
// Days/Time fields that failed to parse.
func LoadCatalog(path string, required []string, log zerolog.Logger) (model.Catalog, optimizer.LoadReport, error) {
	rows, err := LoadSectionRows(path)
	if err != nil {
		return nil, optimizer.LoadReport{}, err
	}
	catalog, report := optimizer.BuildCatalog(rows, required)

	if report.Unparsed > 0 {
		log.Warn().
			Int("unparsed", report.Unparsed).
			Msg("sections with unparsable Days/Time treated as having no fixed meeting")
	}
	for _, c := range report.Courses {
		log.Info().
			Str("course", c.Code).
			Int("sections", c.Sections).
			Int("in_person", c.InPerson).
			Int("online", c.Online).
			Msg("loaded course sections")
	}
	return catalog, report, nil
}
