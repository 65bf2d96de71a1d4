package optimizer

import (
	"fmt"

	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// MissingCourseError is returned when a required course has no sections in
// the catalog. The run cannot proceed without it.
type MissingCourseError struct {
	Course string
}

func (e *MissingCourseError) Error() string {
	return fmt.Sprintf("no sections found for required course %s", e.Course)
}

// Enumerator walks the cross-product of section choices lazily, one tuple at
// a time, so the full candidate set is never materialized. Position i of
// every tuple holds a section of the i-th required course.
type Enumerator struct {
	sections [][]*model.Section
	indices  []int
	done     bool
}

// NewEnumerator prepares an enumeration over the catalog for the given
// required courses. Fails fast if any required course has zero sections.
func NewEnumerator(catalog model.Catalog, required []string) (*Enumerator, error) {
	sections := make([][]*model.Section, len(required))
	for i, code := range required {
		sections[i] = catalog.Sections(code)
		if len(sections[i]) == 0 {
			return nil, &MissingCourseError{Course: code}
		}
	}
	return &Enumerator{
		sections: sections,
		indices:  make([]int, len(required)),
	}, nil
}

// Combinations returns the size of the cross-product.
func (e *Enumerator) Combinations() uint64 {
	total := uint64(1)
	for _, secs := range e.sections {
		total *= uint64(len(secs))
	}
	return total
}

// Next writes the next tuple into buf and advances. It returns false once
// the cross-product is exhausted. buf must have length len(required).
func (e *Enumerator) Next(buf []*model.Section) bool {
	if e.done {
		return false
	}
	for i, idx := range e.indices {
		buf[i] = e.sections[i][idx]
	}
	// odometer increment, rightmost position fastest
	for i := len(e.indices) - 1; i >= 0; i-- {
		e.indices[i]++
		if e.indices[i] < len(e.sections[i]) {
			return true
		}
		e.indices[i] = 0
	}
	e.done = true
	return true
}

// Nominations appends to dst one candidate per slot of the tuple that can
// satisfy the in-person requirement. A tuple with no qualifying slot
// contributes nothing; the scorer's invalidity path covers it if a caller
// routes such a tuple through anyway.
func Nominations(tuple []*model.Section, dst []model.CandidateSchedule) []model.CandidateSchedule {
	var sections []*model.Section // one copy shared by all nominations of the tuple
	for i, sec := range tuple {
		if !sec.QualifiesInPerson() {
			continue
		}
		if sections == nil {
			sections = append([]*model.Section(nil), tuple...)
		}
		dst = append(dst, model.CandidateSchedule{Sections: sections, QualifyingIndex: i})
	}
	return dst
}
