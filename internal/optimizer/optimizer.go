// Package optimizer selects, from independently scheduled course sections,
// the combinations that satisfy the in-person presence requirement while
// maximizing a preference score, and ranks the best of them.
package optimizer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/rkarim/schedule-optimizer/pkg/model"
)

// Options configures one optimization run.
type Options struct {
	// Required lists the course codes that must each contribute one section.
	Required []string
	Scorer   Scorer
	// TopK bounds the number of ranked schedules returned.
	TopK int
	// Workers is the number of scoring goroutines; 0 means GOMAXPROCS.
	Workers int
	// MaxCombinations aborts the run when the cross-product grows past it.
	// 0 disables the ceiling.
	MaxCombinations uint64
	Log             zerolog.Logger
}

// ScoreStats summarizes the score distribution of the valid candidates.
type ScoreStats struct {
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

// Result is the outcome of an optimization run.
type Result struct {
	RunID        string
	Schedules    []model.ScoredSchedule
	Combinations uint64 // cross-product tuples enumerated
	Candidates   uint64 // nominations scored
	Valid        uint64 // candidates with a non-negative score
	Stats        ScoreStats
}

// workItem is one cross-product tuple handed to a scoring worker. Sequence
// numbers keep the final ranking reproducible under any worker count.
type workItem struct {
	seq   uint64
	tuple []*model.Section
}

// Run enumerates every candidate schedule, scores them across a pool of
// workers and returns the top-K ranking. The enumeration is sharded by
// tuple; no candidate mutates shared state, so workers only synchronize at
// the final merge. Cancelling ctx stops the run early.
func Run(ctx context.Context, catalog model.Catalog, opts Options) (*Result, error) {
	enum, err := NewEnumerator(catalog, opts.Required)
	if err != nil {
		return nil, err
	}
	combos := enum.Combinations()
	if opts.MaxCombinations > 0 && combos > opts.MaxCombinations {
		return nil, fmt.Errorf("cross-product size %d exceeds the configured ceiling %d", combos, opts.MaxCombinations)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	runID := uuid.NewString()
	log := opts.Log.With().Str("run_id", runID).Logger()
	log.Debug().
		Uint64("combinations", combos).
		Int("workers", workers).
		Msg("starting enumeration")

	items := make(chan workItem, workers)
	go func() {
		defer close(items)
		buf := make([]*model.Section, len(opts.Required))
		var seq uint64
		for enum.Next(buf) {
			tuple := append([]*model.Section(nil), buf...)
			select {
			case items <- workItem{seq: seq, tuple: tuple}:
			case <-ctx.Done():
				return
			}
			seq++
		}
	}()

	type partial struct {
		top        *topK
		candidates uint64
		valid      uint64
		scores     []float64
	}
	parts := make([]partial, workers)
	nominationsPerTuple := uint64(len(opts.Required))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(p *partial) {
			defer wg.Done()
			p.top = newTopK(opts.TopK)
			var candidates []model.CandidateSchedule
			for item := range items {
				candidates = Nominations(item.tuple, candidates[:0])
				for _, cand := range candidates {
					score := opts.Scorer.Score(cand)
					p.candidates++
					if score >= 0 {
						p.valid++
						p.scores = append(p.scores, float64(score))
					}
					p.top.add(ranked{
						seq: item.seq*nominationsPerTuple + uint64(cand.QualifyingIndex),
						sched: model.ScoredSchedule{
							Score:           score,
							Sections:        cand.Sections,
							QualifyingIndex: cand.QualifyingIndex,
						},
					})
				}
			}
		}(&parts[w])
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{RunID: runID, Combinations: combos}
	merged := parts[0].top
	var scores []float64
	for i := range parts {
		res.Candidates += parts[i].candidates
		res.Valid += parts[i].valid
		scores = append(scores, parts[i].scores...)
		if i > 0 {
			merged.merge(parts[i].top)
		}
	}
	res.Schedules = merged.sorted()
	res.Stats = summarize(scores)

	log.Info().
		Uint64("combinations", res.Combinations).
		Uint64("candidates", res.Candidates).
		Uint64("valid", res.Valid).
		Int("ranked", len(res.Schedules)).
		Msg("optimization finished")
	return res, nil
}

func summarize(scores []float64) ScoreStats {
	if len(scores) == 0 {
		return ScoreStats{}
	}
	stats := ScoreStats{
		Mean:   stat.Mean(scores, nil),
		StdDev: 0,
		Min:    int(scores[0]),
		Max:    int(scores[0]),
	}
	if len(scores) > 1 {
		stats.StdDev = stat.StdDev(scores, nil)
	}
	for _, s := range scores {
		if int(s) < stats.Min {
			stats.Min = int(s)
		}
		if int(s) > stats.Max {
			stats.Max = int(s)
		}
	}
	return stats
}
