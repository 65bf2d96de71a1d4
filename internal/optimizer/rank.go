package optimizer

import (
	"sort"

	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// ranked pairs a scored schedule with its enumeration sequence number.
// Equal scores are ordered by sequence so output is reproducible for a
// fixed input, regardless of how the scoring work was sharded.
type ranked struct {
	seq   uint64
	sched model.ScoredSchedule
}

func rankedLess(a, b ranked) bool {
	if a.sched.Score != b.sched.Score {
		return a.sched.Score > b.sched.Score
	}
	return a.seq < b.seq
}

// topK keeps the K best schedules seen so far. Zero value is not usable;
// use newTopK.
type topK struct {
	k     int
	items []ranked
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make([]ranked, 0, k+1)}
}

// add inserts the schedule if it ranks within the current top K. Schedules
// with negative scores are rejected: they are either invalid (sentinel) or
// conflict-penalized below zero, both filtered from the output.
func (t *topK) add(r ranked) {
	if r.sched.Score < 0 {
		return
	}
	pos := sort.Search(len(t.items), func(i int) bool {
		return rankedLess(r, t.items[i])
	})
	if pos >= t.k {
		return
	}
	t.items = append(t.items, ranked{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = r
	if len(t.items) > t.k {
		t.items = t.items[:t.k]
	}
}

// merge folds another partial top-K list into this one.
func (t *topK) merge(other *topK) {
	for _, r := range other.items {
		t.add(r)
	}
}

// sorted returns the kept schedules, best first.
func (t *topK) sorted() []model.ScoredSchedule {
	out := make([]model.ScoredSchedule, len(t.items))
	for i, r := range t.items {
		out[i] = r.sched
	}
	return out
}

// Rank collects the valid schedules (score >= 0), orders them best first
// with ties broken by enumeration order, and truncates to the top k.
func Rank(schedules []model.ScoredSchedule, k int) []model.ScoredSchedule {
	top := newTopK(k)
	for i, s := range schedules {
		top.add(ranked{seq: uint64(i), sched: s})
	}
	return top.sorted()
}
