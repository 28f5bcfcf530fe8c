package ranking

import "time"

// Subject is the anchor a ranking is computed against: a jobseeker profile
// for personalized recommendations, or a reference job for similarity.
// Absent data is an empty set, never a sentinel, so signal extraction does
// not branch on presence.
type Subject struct {
	CategorySlugs map[string]struct{}
	CategoryIDs   map[int64]struct{}

	// Skills are lower-cased and deduplicated. For a profile subject they
	// come from the user_skills join merged with the profile JSON field; for
	// a job subject they are the reference job's delimited skills list.
	Skills []string

	// Keywords are the reference job's title words (similarity only).
	Keywords []string

	Location string

	// EmployerID is set for job subjects and drives the same-employer bonus.
	EmployerID int64
}

// ProfileSubject builds the personalization anchor. Affinity categories come
// from past applications and saves; they drive only the category signal.
func ProfileSubject(location string, skills []string, affinitySlugs []string, affinityIDs []int64) Subject {
	return Subject{
		CategorySlugs: slugSet(affinitySlugs),
		CategoryIDs:   idSet(affinityIDs),
		Skills:        skills,
		Location:      location,
	}
}

// JobSubject builds the similarity anchor from a reference job's own fields.
func JobSubject(title, skillsText, location string, categorySlugs []string, categoryIDs []int64, employerID int64) Subject {
	return Subject{
		CategorySlugs: slugSet(categorySlugs),
		CategoryIDs:   idSet(categoryIDs),
		Skills:        SplitSkills(skillsText),
		Keywords:      TitleKeywords(title),
		Location:      location,
		EmployerID:    employerID,
	}
}

// Candidate is one pool member under scoring. Category memberships from the
// join table arrive already unioned with the job's inline reference.
type Candidate struct {
	ID            int64
	Title         string
	SkillsText    string
	Location      string
	CategorySlugs []string
	CategoryIDs   []int64
	CreatedAt     time.Time
	Views         int64
	EmployerID    int64
}

func slugSet(slugs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		if s != "" {
			m[s] = struct{}{}
		}
	}
	return m
}

func idSet(ids []int64) map[int64]struct{} {
	m := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id != 0 {
			m[id] = struct{}{}
		}
	}
	return m
}
