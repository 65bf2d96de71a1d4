package optimizer

import "github.com/rkarim/schedule-optimizer/pkg/model"

// Conflict reports whether two sections cannot both be attended. Sections
// without a fixed meeting time never conflict. The check is symmetric and
// has no side effects.
func Conflict(a, b *model.Section) bool {
	if a.Meeting == nil || b.Meeting == nil {
		return false
	}
	return a.Meeting.Overlaps(*b.Meeting)
}
