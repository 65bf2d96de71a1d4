package optimizer

import "github.com/rkarim/schedule-optimizer/pkg/model"

// InvalidScore is returned for schedules with no in-person section at all.
// Such schedules break the presence requirement no matter which slot is
// nominated, so the sentinel is far below any reachable valid score.
const InvalidScore = -1000

// Rubric holds the scoring weights. All weights are explicit so the scorer
// stays pure and testable with arbitrary rubrics.
type Rubric struct {
	// EligibilityBonus rewards schedules with exactly one in-person slot,
	// the minimum presence the requirement asks for.
	EligibilityBonus int `json:"eligibility_bonus"`
	// ConflictPenalty is subtracted once per conflicting pair of slots.
	// Stacking keeps one conflict distinguishable from several.
	ConflictPenalty int `json:"conflict_penalty"`
	// AsyncBonus is added once per online-asynchronous slot.
	AsyncBonus int `json:"async_bonus"`
}

// Scorer computes the desirability of a candidate schedule.
type Scorer struct {
	Rubric   Rubric
	Campuses map[string]int
}

// Score maps a candidate to an integer desirability score. Pure and
// deterministic: identical input always yields an identical score.
func (s Scorer) Score(c model.CandidateSchedule) int {
	inPerson := 0
	for _, sec := range c.Sections {
		if sec.QualifiesInPerson() {
			inPerson++
		}
	}
	if inPerson == 0 {
		return InvalidScore
	}

	score := 0
	if inPerson == 1 {
		score += s.Rubric.EligibilityBonus
	}

	// Unknown campuses contribute nothing.
	score += s.Campuses[c.QualifyingSection().Location]

	for i := 0; i < len(c.Sections); i++ {
		for j := i + 1; j < len(c.Sections); j++ {
			if Conflict(c.Sections[i], c.Sections[j]) {
				score -= s.Rubric.ConflictPenalty
			}
		}
	}

	for _, sec := range c.Sections {
		if sec.Mode == model.DeliveryOnlineAsync {
			score += s.Rubric.AsyncBonus
		}
	}
	return score
}
