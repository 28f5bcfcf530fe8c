package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wantok-jobs/internal/config"
	"wantok-jobs/internal/repository"
)

func newSimilarUC(jobs *mockJobRepo, categories *mockCategoryRepo) *SimilarJobs {
	uc := NewSimilarJobsUsecase(jobs, categories, config.RecommendConfig{}, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestSimilarJobs_MissingReferenceReturnsEmptyList(t *testing.T) {
	uc := newSimilarUC(&mockJobRepo{byID: map[int64]repository.JobRow{}}, &mockCategoryRepo{})

	items, err := uc.SimilarJobs(context.Background(), 999, 6)
	if err != nil {
		t.Fatalf("expected nil error for missing reference, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestSimilarJobs_CandidateQueryFailureIsFatal(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]repository.JobRow{1: {ID: 1}}}
	jobs.activeErr = errors.New("connection refused")
	uc := newSimilarUC(jobs, &mockCategoryRepo{})

	if _, err := uc.SimilarJobs(context.Background(), 1, 6); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSimilarJobs_NeverReturnsReferenceJob(t *testing.T) {
	ref := repository.JobRow{ID: 1, Title: "Accountant", CreatedAt: testNow}
	jobs := &mockJobRepo{
		byID: map[int64]repository.JobRow{1: ref},
		active: []repository.JobRow{
			ref,
			activeJob(2, 1, 5),
			activeJob(3, 2, 3),
		},
	}
	uc := newSimilarUC(jobs, &mockCategoryRepo{})

	items, err := uc.SimilarJobs(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, it := range items {
		if it.JobID == 1 {
			t.Fatalf("reference job leaked into similar results")
		}
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

// Reference: posted 5 days ago, Port Moresby, skills accounting,excel.
// Candidate A: 2 days old, same location, overlapping skills and category.
// Candidate B: no overlapping signals. A must rank first.
func TestSimilarJobs_OverlapOutranksNoOverlap(t *testing.T) {
	ref := repository.JobRow{
		ID:         1,
		Title:      "Accountant",
		Location:   "Port Moresby",
		Skills:     "accounting,excel",
		EmployerID: 50,
		CreatedAt:  testNow.Add(-5 * 24 * time.Hour),
	}
	a := repository.JobRow{
		ID:         2,
		Title:      "Senior Accountant",
		Location:   "Port Moresby",
		Skills:     "accounting,audit",
		EmployerID: 60,
		CreatedAt:  testNow.Add(-2 * 24 * time.Hour),
		ViewsCount: 10,
	}
	b := repository.JobRow{
		ID:         3,
		Title:      "Truck Driver",
		Location:   "Madang",
		Skills:     "driving",
		EmployerID: 70,
		CreatedAt:  testNow.Add(-28 * 24 * time.Hour),
		ViewsCount: 2,
	}

	jobs := &mockJobRepo{
		byID:   map[int64]repository.JobRow{1: ref},
		active: []repository.JobRow{a, b},
	}
	categories := &mockCategoryRepo{slugs: map[int64][]string{
		1: {"finance"},
		2: {"finance"},
	}}
	uc := newSimilarUC(jobs, categories)

	items, err := uc.SimilarJobs(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].JobID != 2 {
		t.Fatalf("expected overlapping candidate first, got job %d", items[0].JobID)
	}
	if items[0].Score <= items[1].Score {
		t.Fatalf("expected strict score separation: %v vs %v", items[0].Score, items[1].Score)
	}
}

func TestSimilarJobs_SameEmployerGetsBonus(t *testing.T) {
	ref := repository.JobRow{ID: 1, Title: "Electrician", EmployerID: 42, CreatedAt: testNow}
	sameEmployer := repository.JobRow{ID: 2, Title: "Linesman", EmployerID: 42, CreatedAt: testNow.Add(-40 * 24 * time.Hour)}
	otherEmployer := repository.JobRow{ID: 3, Title: "Linesman", EmployerID: 9, CreatedAt: testNow.Add(-40 * 24 * time.Hour)}

	jobs := &mockJobRepo{
		byID:   map[int64]repository.JobRow{1: ref},
		active: []repository.JobRow{sameEmployer, otherEmployer},
	}
	uc := newSimilarUC(jobs, &mockCategoryRepo{})

	items, err := uc.SimilarJobs(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items[0].JobID != 2 {
		t.Fatalf("expected same-employer candidate first, got %d", items[0].JobID)
	}
	if got := items[0].Score - items[1].Score; !closeTo(got, 5) {
		t.Fatalf("expected 5-point employer bonus gap, got %v", got)
	}
}

func TestSimilarJobs_CategoryLookupFailureDegrades(t *testing.T) {
	ref := repository.JobRow{ID: 1, Title: "Accountant", CreatedAt: testNow}
	jobs := &mockJobRepo{
		byID:   map[int64]repository.JobRow{1: ref},
		active: []repository.JobRow{activeJob(2, 1, 5)},
	}
	uc := newSimilarUC(jobs, &mockCategoryRepo{err: errors.New("down")})

	items, err := uc.SimilarJobs(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("expected degradation, got err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}
