package ranking

import (
	"strings"
	"time"
)

const recencyWindowDays = 30.0

// CategorySignal is binary: 1 when any of the candidate's category
// identifiers, slug or numeric, intersect the subject's affinity sets.
func CategorySignal(c Candidate, s Subject) float64 {
	for _, slug := range c.CategorySlugs {
		if _, ok := s.CategorySlugs[slug]; ok {
			return 1
		}
	}
	for _, id := range c.CategoryIDs {
		if _, ok := s.CategoryIDs[id]; ok {
			return 1
		}
	}
	return 0
}

// SkillSignal is the fraction of the subject's skills found as substrings of
// the candidate's skills text (title when no skills are listed). Matching
// the first five relevant skills already saturates the signal.
func SkillSignal(c Candidate, s Subject) float64 {
	if len(s.Skills) == 0 {
		return 0
	}

	text := strings.ToLower(c.SkillsText)
	if text == "" {
		text = strings.ToLower(c.Title)
	}

	matched := 0
	for _, skill := range s.Skills {
		if strings.Contains(text, skill) {
			matched++
		}
	}

	denom := len(s.Skills)
	if denom > 5 {
		denom = 5
	}
	return capAtOne(float64(matched) / float64(denom))
}

// KeywordSignal measures title-keyword and skill overlap against a reference
// job: every subject keyword or skill contained in the candidate's
// title+skills text counts, normalized by the keyword count alone.
func KeywordSignal(c Candidate, s Subject) float64 {
	text := strings.ToLower(c.Title + " " + c.SkillsText)

	matched := 0
	for _, w := range s.Keywords {
		if strings.Contains(text, w) {
			matched++
		}
	}
	for _, skill := range s.Skills {
		if strings.Contains(text, skill) {
			matched++
		}
	}

	denom := len(s.Keywords)
	if denom < 1 {
		denom = 1
	}
	return capAtOne(float64(matched) / float64(denom))
}

// LocationSignal compares two free-text locations: 1 for exact
// case-insensitive equality, 0.6 when either side contains the other's first
// comma-delimited segment ("Port Moresby, NCD" vs "Port Moresby"), else 0.
// Missing data on either side scores 0.
func LocationSignal(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, firstSegment(b)) || strings.Contains(b, firstSegment(a)) {
		return 0.6
	}
	return 0
}

// RecencySignal decays linearly from 1 at posting time to 0 at thirty days,
// and stays 0 beyond.
func RecencySignal(now, createdAt time.Time) float64 {
	ageDays := now.Sub(createdAt).Hours() / 24
	v := 1 - ageDays/recencyWindowDays
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PopularitySignal is views relative to the busiest job in the current pool.
// The denominator floor of 1 means an all-zero pool scores 0 everywhere.
func PopularitySignal(views, maxViews int64) float64 {
	if maxViews < 1 {
		maxViews = 1
	}
	return capAtOne(float64(views) / float64(maxViews))
}

// MaxViews is the popularity denominator for a candidate pool.
func MaxViews(candidates []Candidate) int64 {
	var max int64 = 1
	for _, c := range candidates {
		if c.Views > max {
			max = c.Views
		}
	}
	return max
}

func firstSegment(loc string) string {
	if i := strings.Index(loc, ","); i >= 0 {
		loc = loc[:i]
	}
	return strings.TrimSpace(loc)
}

func capAtOne(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
