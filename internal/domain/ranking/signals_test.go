package ranking

import (
	"testing"
	"time"
)

func TestCategorySignal_BinaryOnSlugIntersection(t *testing.T) {
	s := ProfileSubject("", nil, []string{"accounting"}, nil)

	c := Candidate{CategorySlugs: []string{"finance", "accounting"}}
	if got := CategorySignal(c, s); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}

	c = Candidate{CategorySlugs: []string{"finance"}}
	if got := CategorySignal(c, s); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCategorySignal_NumericIDCountsAsMatch(t *testing.T) {
	s := ProfileSubject("", nil, nil, []int64{7})
	c := Candidate{CategoryIDs: []int64{7}}
	if got := CategorySignal(c, s); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestCategorySignal_NeverFractional(t *testing.T) {
	s := ProfileSubject("", nil, []string{"a", "b", "c"}, nil)
	for _, slugs := range [][]string{{"a"}, {"a", "b"}, {"a", "b", "c"}, {"x"}} {
		got := CategorySignal(Candidate{CategorySlugs: slugs}, s)
		if got != 0 && got != 1 {
			t.Fatalf("slugs %v: expected binary signal, got %v", slugs, got)
		}
	}
}

func TestSkillSignal_FractionOfSubjectSkills(t *testing.T) {
	s := ProfileSubject("", []string{"go", "postgresql", "docker", "kubernetes"}, nil, nil)
	c := Candidate{SkillsText: "Go, PostgreSQL, Linux"}

	got := SkillSignal(c, s)
	want := 2.0 / 4.0
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSkillSignal_DenominatorCappedAtFive(t *testing.T) {
	skills := []string{"go", "java", "python", "ruby", "rust", "scala", "perl"}
	s := ProfileSubject("", skills, nil, nil)
	c := Candidate{SkillsText: "go java python ruby rust"}

	if got := SkillSignal(c, s); got != 1 {
		t.Fatalf("expected saturated signal, got %v", got)
	}
}

func TestSkillSignal_TitleFallbackWhenNoSkillsListed(t *testing.T) {
	s := ProfileSubject("", []string{"accountant"}, nil, nil)
	c := Candidate{Title: "Senior Accountant", SkillsText: ""}
	if got := SkillSignal(c, s); got != 1 {
		t.Fatalf("expected title fallback match, got %v", got)
	}
}

func TestSkillSignal_NoSubjectSkills(t *testing.T) {
	s := ProfileSubject("", nil, nil, nil)
	c := Candidate{SkillsText: "go"}
	if got := SkillSignal(c, s); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestKeywordSignal_NormalizedByTitleWords(t *testing.T) {
	s := JobSubject("Senior Accountant Lae", "excel", "", nil, nil, 0)
	// Keywords: "senior", "accountant" (>=4 chars); skills: "excel".
	c := Candidate{Title: "Accountant", SkillsText: "excel,reporting"}

	got := KeywordSignal(c, s)
	want := 1.0 // matched accountant + excel = 2, denom = 2 keywords, capped at 1
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestKeywordSignal_CapsAtOne(t *testing.T) {
	s := JobSubject("Cox", "cooking,baking,menus", "", nil, nil, 0)
	// No title keywords survive the length filter, so the denominator
	// floors at 1 and the three skill matches cap at 1.
	c := Candidate{Title: "Head Chef", SkillsText: "cooking, baking, menus"}
	if got := KeywordSignal(c, s); got != 1 {
		t.Fatalf("expected capped 1, got %v", got)
	}
}

func TestLocationSignal(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"exact case-insensitive", "Port Moresby", "port moresby", 1},
		{"first segment containment", "Port Moresby, NCD", "Port Moresby", 0.6},
		{"containment other direction", "Lae", "Lae, Morobe", 0.6},
		{"no overlap", "Lae", "Madang", 0},
		{"one side empty", "", "Lae", 0},
		{"both empty", "", "", 0},
	}
	for _, tt := range tests {
		if got := LocationSignal(tt.a, tt.b); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestRecencySignal_FullAtCreation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := RecencySignal(now, now); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestRecencySignal_ZeroAtAndBeyondThirtyDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, age := range []time.Duration{30 * 24 * time.Hour, 45 * 24 * time.Hour} {
		if got := RecencySignal(now, now.Add(-age)); got != 0 {
			t.Fatalf("age %v: expected 0, got %v", age, got)
		}
	}
}

func TestRecencySignal_LinearDecay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := RecencySignal(now, now.Add(-15*24*time.Hour))
	if got < 0.499 || got > 0.501 {
		t.Fatalf("expected ~0.5 at day 15, got %v", got)
	}
}

func TestPopularitySignal_MaxViewsCandidateSaturates(t *testing.T) {
	pool := []Candidate{{Views: 3}, {Views: 12}, {Views: 0}}
	max := MaxViews(pool)
	if max != 12 {
		t.Fatalf("expected max 12, got %d", max)
	}
	if got := PopularitySignal(12, max); got != 1 {
		t.Fatalf("expected 1 for max-views candidate, got %v", got)
	}
	if got := PopularitySignal(3, max); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestPopularitySignal_AllZeroViewsPool(t *testing.T) {
	pool := []Candidate{{Views: 0}, {Views: 0}}
	max := MaxViews(pool)
	if max != 1 {
		t.Fatalf("expected denominator floor 1, got %d", max)
	}
	for _, c := range pool {
		if got := PopularitySignal(c.Views, max); got != 0 {
			t.Fatalf("expected 0 in all-zero pool, got %v", got)
		}
	}
}
