package ranking

import (
	"sort"
	"time"
)

// Signal weights in points. All signals are normalized to [0,1] before
// weighting, so a perfect candidate scores 100 (105 with the employer bonus).
const (
	WeightCategory   = 30.0
	WeightSkill      = 25.0
	WeightLocation   = 20.0
	WeightRecency    = 15.0
	WeightPopularity = 10.0

	// EmployerBonus is raw points added after weighting when a similarity
	// candidate shares the reference job's employer.
	EmployerBonus = 5.0
)

type ScoredJob struct {
	Candidate
	Score float64
}

// ScorePersonalized scores one candidate against a profile subject. maxViews
// must be computed once over the whole pool (see MaxViews).
func ScorePersonalized(c Candidate, s Subject, maxViews int64, now time.Time) float64 {
	return WeightCategory*CategorySignal(c, s) +
		WeightSkill*SkillSignal(c, s) +
		WeightLocation*LocationSignal(c.Location, s.Location) +
		WeightRecency*RecencySignal(now, c.CreatedAt) +
		WeightPopularity*PopularitySignal(c.Views, maxViews)
}

// ScoreSimilar scores one candidate against a reference-job subject. The
// skill slot uses keyword overlap, and a shared employer earns the bonus.
func ScoreSimilar(c Candidate, s Subject, maxViews int64, now time.Time) float64 {
	score := WeightCategory*CategorySignal(c, s) +
		WeightSkill*KeywordSignal(c, s) +
		WeightLocation*LocationSignal(c.Location, s.Location) +
		WeightRecency*RecencySignal(now, c.CreatedAt) +
		WeightPopularity*PopularitySignal(c.Views, maxViews)

	if s.EmployerID != 0 && c.EmployerID == s.EmployerID {
		score += EmployerBonus
	}
	return score
}

// Rank orders scored jobs by descending score and truncates to limit. The
// sort is stable: ties keep the pool's fetch order, which is
// recency-descending.
func Rank(scored []ScoredJob, limit int) []ScoredJob {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
